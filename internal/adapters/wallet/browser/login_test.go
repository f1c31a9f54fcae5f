package browser

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports/mocks"
)

func TestBuildLoginURLIncludesKeyAndCallbacks(t *testing.T) {
	t.Parallel()

	u, err := BuildLoginURL(LoginRequest{
		WalletURL:  "https://app.mynearwallet.com/",
		PublicKey:  "ed25519:abc",
		SuccessURL: "http://localhost:3000/login/success?state=s",
		FailureURL: "http://localhost:3000/login/failure?state=s",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "/login/", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "np", q.Get("title"))
	assert.Equal(t, "ed25519:abc", q.Get("public_key"))
	assert.Equal(t, "http://localhost:3000/login/success?state=s", q.Get("success_url"))
	assert.Equal(t, "http://localhost:3000/login/failure?state=s", q.Get("failure_url"))
}

func TestBuildLoginURLRejectsNonHTTPScheme(t *testing.T) {
	t.Parallel()

	_, err := BuildLoginURL(LoginRequest{
		WalletURL:  "ftp://wallet.example.com",
		PublicKey:  "ed25519:abc",
		SuccessURL: "http://localhost/ok",
		FailureURL: "http://localhost/ko",
	})
	require.ErrorContains(t, err, "http or https")
}

func get(t *testing.T, rawURL string) (int, string) {
	t.Helper()

	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestCallbackServerReturnsApprovalOnSuccess(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	status, body := get(t, server.SuccessURL()+"&account_id=alice.near&public_key=ed25519%3Aabc&all_keys=ed25519%3Aabc,ed25519%3Adef")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Wallet connected")

	approval, err := server.Wait(context.Background(), 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "alice.near", approval.AccountID)
	assert.Equal(t, "ed25519:abc", approval.PublicKey)
	assert.Equal(t, []string{"ed25519:abc", "ed25519:def"}, approval.AllKeys)
}

func TestCallbackServerRejectsStateMismatch(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	forged, err := url.Parse(server.SuccessURL())
	require.NoError(t, err)
	forged.RawQuery = "state=forged&account_id=mallory.near"

	status, _ := get(t, forged.String())
	assert.Equal(t, http.StatusBadRequest, status)

	_, err = server.Wait(context.Background(), 2*time.Second)
	require.ErrorIs(t, err, ErrStateMismatch)
}

func TestCallbackServerFailureCallback(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	status, _ := get(t, server.FailureURL()+"&errorCode=userRejected")
	assert.Equal(t, http.StatusOK, status)

	_, err = server.Wait(context.Background(), 2*time.Second)
	require.ErrorIs(t, err, ErrLoginRejected)
	assert.ErrorContains(t, err, "userRejected")
}

func TestCallbackServerTimesOut(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state")
	require.NoError(t, err)

	_, err = server.Wait(context.Background(), 10*time.Millisecond)
	require.ErrorIs(t, err, ErrCallbackTimeout)
}

func TestFlowRunVerifiesKeyOnChain(t *testing.T) {
	t.Parallel()

	chain := mocks.NewMockChainQuerier(t)
	announced := make(chan string, 1)
	flow := Flow{
		WalletURL: "https://wallet.example.com",
		Timeout:   5 * time.Second,
		Chain:     chain,
		Announce:  func(loginURL string) { announced <- loginURL },
	}

	chain.EXPECT().ViewAccessKey(mock.Anything, domain.AccountID("alice.near"), mock.Anything, domain.FinalityFinal).
		Return(domain.AccessKeyView{Nonce: 1, Permission: domain.PermissionFullAccess}, nil).Once()

	go func() {
		loginURL := <-announced
		parsed, err := url.Parse(loginURL)
		if err != nil {
			return
		}
		q := parsed.Query()
		callback := q.Get("success_url") + "&account_id=Alice.near&public_key=" + url.QueryEscape(q.Get("public_key"))
		resp, err := http.Get(callback)
		if err == nil {
			_ = resp.Body.Close()
		}
	}()

	credential, err := flow.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("alice.near"), credential.AccountID)
	assert.NoError(t, credential.Validate())
}

func TestFlowRunRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	announced := make(chan string, 1)
	flow := Flow{
		WalletURL: "https://wallet.example.com",
		Timeout:   5 * time.Second,
		Announce:  func(loginURL string) { announced <- loginURL },
	}

	go func() {
		parsed, err := url.Parse(<-announced)
		if err != nil {
			return
		}
		resp, err := http.Get(parsed.Query().Get("success_url") + "&account_id=alice.near&public_key=ed25519%3Aother")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()

	_, err := flow.Run(context.Background())
	require.ErrorContains(t, err, "wallet approved key")
}

func TestFlowRunHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Flow{WalletURL: "https://wallet.example.com"}.Run(ctx)
	require.True(t, errors.Is(err, context.Canceled))
}
