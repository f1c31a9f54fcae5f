package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/near-pool-cli/internal/domain"
)

type capturedRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

func newRPCServer(t *testing.T, handler func(req capturedRequest) string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		captured []capturedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		mu.Lock()
		captured = append(captured, req)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(req)))
	}))
	t.Cleanup(server.Close)

	return server, &captured
}

type recordingObserver struct {
	labels []string
	errs   []error
}

func (o *recordingObserver) ObserveQuery(label string, _ time.Duration, err error) {
	o.labels = append(o.labels, label)
	o.errs = append(o.errs, err)
}

func TestClientViewAccount(t *testing.T) {
	server, captured := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","result":{"amount":"1500000000000000000000000","locked":"0","storage_usage":182,"block_height":100,"block_hash":"abc"}}`
	})
	observer := &recordingObserver{}
	client := New(server.URL, WithObserver(observer))

	view, err := client.ViewAccount(context.Background(), "alice.near", domain.FinalityOptimistic)
	require.NoError(t, err)

	assert.Equal(t, "1.50", domain.FormatDisplay(view.Amount))
	assert.Equal(t, uint64(182), view.StorageUsage)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "query", req.Method)
	assert.NotEmpty(t, req.ID)
	assert.JSONEq(t, `{"request_type":"view_account","finality":"optimistic","account_id":"alice.near"}`, string(req.Params))
	assert.Equal(t, []string{"view_account"}, observer.labels)
}

func TestClientCallFunctionEncodesArgsAndDecodesBytes(t *testing.T) {
	var ints []int
	for _, b := range []byte(`"42"`) {
		ints = append(ints, int(b))
	}
	encodedInts, err := json.Marshal(ints)
	require.NoError(t, err)

	server, captured := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","result":{"result":` + string(encodedInts) + `,"logs":[],"block_height":1}}`
	})
	client := New(server.URL)

	raw, err := client.CallFunction(context.Background(), domain.DefaultPoolID, domain.MethodGetAccountStakedBalance, map[string]string{"account_id": "alice.near"}, domain.FinalityOptimistic)
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(raw))

	var params map[string]string
	require.NoError(t, json.Unmarshal((*captured)[0].Params, &params))
	assert.Equal(t, "call_function", params["request_type"])
	assert.Equal(t, "frutero.pool.near", params["account_id"])
	assert.Equal(t, "get_account_staked_balance", params["method_name"])
	args, err := base64.StdEncoding.DecodeString(params["args_base64"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_id":"alice.near"}`, string(args))
}

func TestClientViewAccessKeyPermissions(t *testing.T) {
	responses := []string{
		`{"jsonrpc":"2.0","id":"x","result":{"nonce":7,"permission":"FullAccess","block_height":9,"block_hash":"hash"}}`,
		`{"jsonrpc":"2.0","id":"x","result":{"nonce":8,"permission":{"FunctionCall":{"allowance":null,"receiver_id":"pool","method_names":[]}},"block_height":9,"block_hash":"hash"}}`,
	}
	call := 0
	server, _ := newRPCServer(t, func(capturedRequest) string {
		defer func() { call++ }()
		return responses[call]
	})
	client := New(server.URL)

	full, err := client.ViewAccessKey(context.Background(), "alice.near", "ed25519:key", domain.FinalityFinal)
	require.NoError(t, err)
	assert.True(t, full.FullAccess())
	assert.Equal(t, uint64(7), full.Nonce)
	assert.Equal(t, "hash", full.BlockHash)

	limited, err := client.ViewAccessKey(context.Background(), "alice.near", "ed25519:key", domain.FinalityFinal)
	require.NoError(t, err)
	assert.False(t, limited.FullAccess())
	assert.Equal(t, "FunctionCall", limited.Permission)
}

func TestClientQueryErrorString(t *testing.T) {
	server, _ := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","result":{"error":"access key ed25519:key does not exist while viewing","logs":[],"block_height":1}}`
	})
	client := New(server.URL)

	_, err := client.ViewAccessKey(context.Background(), "alice.near", "ed25519:key", domain.FinalityFinal)
	require.ErrorContains(t, err, "does not exist while viewing")
}

func TestClientRPCErrorObject(t *testing.T) {
	server, _ := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","error":{"name":"HANDLER_ERROR","cause":{"name":"UNKNOWN_ACCOUNT","info":{}},"code":-32000,"message":"Server error","data":"account ghost.near does not exist"}}`
	})
	observer := &recordingObserver{}
	client := New(server.URL, WithObserver(observer))

	_, err := client.ViewAccount(context.Background(), "ghost.near", domain.FinalityOptimistic)
	require.Error(t, err)

	var rpcErr *Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "UNKNOWN_ACCOUNT", rpcErr.CauseName())
	assert.Contains(t, err.Error(), "HANDLER_ERROR/UNKNOWN_ACCOUNT: Server error: account ghost.near does not exist")
	require.Len(t, observer.errs, 1)
	assert.Error(t, observer.errs[0])
}

func TestClientBroadcastTxCommit(t *testing.T) {
	server, captured := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","result":{"status":{"SuccessValue":""},"transaction":{"hash":"8Ha"}}}`
	})
	client := New(server.URL)

	outcome, err := client.BroadcastTxCommit(context.Background(), []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "8Ha", outcome.Hash)

	req := (*captured)[0]
	assert.Equal(t, "broadcast_tx_commit", req.Method)
	assert.JSONEq(t, `["AQID"]`, string(req.Params))
}

func TestClientBroadcastFailureCarriesFailureJSON(t *testing.T) {
	server, _ := newRPCServer(t, func(capturedRequest) string {
		return `{"jsonrpc":"2.0","id":"x","result":{"status":{"Failure":{"ActionError":{"index":0,"kind":{"FunctionCallError":{"ExecutionError":"Smart contract panicked: Not enough balance"}}}}},"transaction":{"hash":"F41"}}}`
	})
	client := New(server.URL)

	outcome, err := client.BroadcastTxCommit(context.Background(), []byte{1})
	require.ErrorIs(t, err, ErrTransactionFailed)
	assert.Contains(t, err.Error(), "Smart contract panicked: Not enough balance")
	assert.Equal(t, "F41", outcome.Hash)
}

func TestClientRejectsOversizedResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"` + strings.Repeat("a", maxResponseBytes) + `"}`))
	}))
	t.Cleanup(server.Close)

	_, err := New(server.URL).ViewAccount(context.Background(), "alice.near", domain.FinalityOptimistic)
	require.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestClientNonJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := New(server.URL).ViewAccount(context.Background(), "alice.near", domain.FinalityOptimistic)
	require.ErrorContains(t, err, "status 502")
}
