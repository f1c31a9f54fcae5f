package browser

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	successPath = "/login/success"
	failurePath = "/login/failure"
)

var (
	ErrStateMismatch   = errors.New("wallet callback state mismatch")
	ErrCallbackTimeout = errors.New("timed out waiting for wallet callback")
	ErrMissingState    = errors.New("expected state is required")
	ErrLoginRejected   = errors.New("wallet login rejected")
)

type LoginRequest struct {
	WalletURL  string
	Title      string
	PublicKey  string
	SuccessURL string
	FailureURL string
}

// Approval is what the wallet reports back on success.
type Approval struct {
	AccountID string
	PublicKey string
	AllKeys   []string
}

func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// BuildLoginURL points at the wallet's /login/ page asking it to add
// PublicKey as an access key of the chosen account.
func BuildLoginURL(req LoginRequest) (string, error) {
	if req.WalletURL == "" {
		return "", errors.New("wallet url is required")
	}
	if req.PublicKey == "" {
		return "", errors.New("public key is required")
	}
	if req.SuccessURL == "" || req.FailureURL == "" {
		return "", errors.New("success and failure urls are required")
	}

	parsed, err := url.Parse(strings.TrimRight(req.WalletURL, "/") + "/login/")
	if err != nil {
		return "", fmt.Errorf("parse wallet url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("wallet url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("wallet url host is required")
	}

	title := req.Title
	if title == "" {
		title = "np"
	}

	q := parsed.Query()
	q.Set("title", title)
	q.Set("public_key", req.PublicKey)
	q.Set("success_url", req.SuccessURL)
	q.Set("failure_url", req.FailureURL)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

type CallbackServer struct {
	expectedState string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	approval Approval
	err      error
}

func StartCallbackServer(listenAddr string, expectedState string) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		expectedState: expectedState,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(successPath, cb.handleSuccess)
	mux.HandleFunc(failurePath, cb.handleFailure)

	cb.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) SuccessURL() string {
	return c.callbackURL(successPath)
}

func (c *CallbackServer) FailureURL() string {
	return c.callbackURL(failurePath)
}

func (c *CallbackServer) callbackURL(path string) string {
	host := "localhost"
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		host = fmt.Sprintf("localhost:%d", tcpAddr.Port)
	}

	return (&url.URL{
		Scheme:   "http",
		Host:     host,
		Path:     path,
		RawQuery: url.Values{"state": {c.expectedState}}.Encode(),
	}).String()
}

// Wait blocks until the wallet redirects back, ctx ends or timeout elapses.
// The server is closed on return.
func (c *CallbackServer) Wait(ctx context.Context, timeout time.Duration) (Approval, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.approval, result.err
	case <-timer.C:
		return Approval{}, ErrCallbackTimeout
	case <-ctx.Done():
		return Approval{}, ctx.Err()
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleSuccess(w http.ResponseWriter, r *http.Request) {
	if !c.checkState(w, r) {
		return
	}

	query := r.URL.Query()
	accountID := query.Get("account_id")
	if accountID == "" {
		c.trySendResult(callbackResult{err: errors.New("wallet callback missing account_id")})
		http.Error(w, "missing account_id", http.StatusBadRequest)
		return
	}

	var allKeys []string
	if raw := query.Get("all_keys"); raw != "" {
		allKeys = strings.Split(raw, ",")
	}

	c.trySendResult(callbackResult{approval: Approval{
		AccountID: accountID,
		PublicKey: query.Get("public_key"),
		AllKeys:   allKeys,
	}})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Wallet connected. You can close this window."))
}

func (c *CallbackServer) handleFailure(w http.ResponseWriter, r *http.Request) {
	if !c.checkState(w, r) {
		return
	}

	reason := r.URL.Query().Get("errorCode")
	if message := r.URL.Query().Get("errorMessage"); message != "" {
		reason = strings.TrimPrefix(reason+": "+message, ": ")
	}
	err := ErrLoginRejected
	if reason != "" {
		err = fmt.Errorf("%w: %s", ErrLoginRejected, reason)
	}

	c.trySendResult(callbackResult{err: err})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Wallet login cancelled. You can close this window."))
}

func (c *CallbackServer) checkState(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("state") != c.expectedState {
		c.trySendResult(callbackResult{err: ErrStateMismatch})
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return false
	}

	return true
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
