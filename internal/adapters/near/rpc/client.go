package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

const (
	maxResponseBytes = 4 << 20
	defaultTimeout   = 30 * time.Second
)

var (
	ErrTransactionFailed = errors.New("transaction failed")
	ErrResponseTooLarge  = errors.New("rpc response too large")
)

// Observer is told about every RPC round trip.
type Observer interface {
	ObserveQuery(requestType string, elapsed time.Duration, err error)
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client speaks NEAR JSON-RPC 2.0 over HTTP POST.
type Client struct {
	endpoint string
	http     *http.Client
	observer Observer
	logger   *slog.Logger
}

var _ ports.ChainQuerier = (*Client)(nil)

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

type viewAccountResult struct {
	Amount       string `json:"amount"`
	Locked       string `json:"locked"`
	StorageUsage uint64 `json:"storage_usage"`
	BlockHeight  uint64 `json:"block_height"`
	BlockHash    string `json:"block_hash"`
}

func (c *Client) ViewAccount(ctx context.Context, accountID domain.AccountID, finality domain.Finality) (domain.AccountView, error) {
	var result viewAccountResult
	err := c.query(ctx, "view_account", map[string]any{
		"request_type": "view_account",
		"finality":     finality,
		"account_id":   accountID,
	}, &result)
	if err != nil {
		return domain.AccountView{}, err
	}

	amount, err := domain.ParseYocto(result.Amount)
	if err != nil {
		return domain.AccountView{}, fmt.Errorf("view account %s amount: %w", accountID, err)
	}
	locked, err := domain.ParseYocto(result.Locked)
	if err != nil {
		return domain.AccountView{}, fmt.Errorf("view account %s locked: %w", accountID, err)
	}

	return domain.AccountView{
		Amount:       amount,
		Locked:       locked,
		StorageUsage: result.StorageUsage,
		BlockHeight:  result.BlockHeight,
		BlockHash:    result.BlockHash,
	}, nil
}

type callFunctionResult struct {
	Result      []int    `json:"result"`
	Logs        []string `json:"logs"`
	BlockHeight uint64   `json:"block_height"`
}

func (c *Client) CallFunction(ctx context.Context, contractID domain.AccountID, method string, args any, finality domain.Finality) ([]byte, error) {
	if args == nil {
		args = struct{}{}
	}
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s args: %w", method, err)
	}

	var result callFunctionResult
	err = c.query(ctx, "call_function", map[string]any{
		"request_type": "call_function",
		"finality":     finality,
		"account_id":   contractID,
		"method_name":  method,
		"args_base64":  base64.StdEncoding.EncodeToString(encodedArgs),
	}, &result)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(result.Result))
	for i, b := range result.Result {
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("call %s: result byte %d out of range", method, b)
		}
		out[i] = byte(b)
	}

	return out, nil
}

type accessKeyResult struct {
	Nonce       uint64          `json:"nonce"`
	Permission  json.RawMessage `json:"permission"`
	BlockHeight uint64          `json:"block_height"`
	BlockHash   string          `json:"block_hash"`
}

func (c *Client) ViewAccessKey(ctx context.Context, accountID domain.AccountID, publicKey string, finality domain.Finality) (domain.AccessKeyView, error) {
	var result accessKeyResult
	err := c.query(ctx, "view_access_key", map[string]any{
		"request_type": "view_access_key",
		"finality":     finality,
		"account_id":   accountID,
		"public_key":   publicKey,
	}, &result)
	if err != nil {
		return domain.AccessKeyView{}, err
	}

	return domain.AccessKeyView{
		Nonce:       result.Nonce,
		Permission:  permissionName(result.Permission),
		BlockHeight: result.BlockHeight,
		BlockHash:   result.BlockHash,
	}, nil
}

// permissionName returns "FullAccess" or the single key of an object
// permission such as {"FunctionCall": {...}}.
func permissionName(raw json.RawMessage) string {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err == nil {
		for key := range object {
			return key
		}
	}

	return ""
}

type txResult struct {
	Status      map[string]json.RawMessage `json:"status"`
	Transaction struct {
		Hash string `json:"hash"`
	} `json:"transaction"`
}

func (c *Client) BroadcastTxCommit(ctx context.Context, signedTx []byte) (domain.TxOutcome, error) {
	var result txResult
	params := []string{base64.StdEncoding.EncodeToString(signedTx)}
	if err := c.call(ctx, "broadcast_tx_commit", "broadcast_tx_commit", params, &result); err != nil {
		return domain.TxOutcome{}, err
	}

	if failure, ok := result.Status["Failure"]; ok {
		return domain.TxOutcome{Hash: result.Transaction.Hash}, fmt.Errorf("%w: %s", ErrTransactionFailed, compactJSON(failure))
	}

	outcome := domain.TxOutcome{Hash: result.Transaction.Hash}
	if value, ok := result.Status["SuccessValue"]; ok {
		var encoded string
		if err := json.Unmarshal(value, &encoded); err == nil {
			outcome.SuccessValue = encoded
		}
	}

	return outcome, nil
}

// query wraps the "query" method and surfaces the in-result error string
// some nodes return instead of a JSON-RPC error.
func (c *Client) query(ctx context.Context, requestType string, params map[string]any, out any) error {
	var raw json.RawMessage
	if err := c.call(ctx, requestType, "query", params, &raw); err != nil {
		return err
	}

	var queryErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &queryErr); err == nil && queryErr.Error != "" {
		return fmt.Errorf("query %s: %s", requestType, queryErr.Error)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s result: %w", requestType, err)
	}

	return nil
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

func (c *Client) call(ctx context.Context, label, method string, params any, out any) (err error) {
	started := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveQuery(label, time.Since(started), err)
		}
	}()

	body, err := json.Marshal(request{JSONRPC: "2.0", ID: uuid.NewString(), Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", label, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", label, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send %s request: %w", label, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("read %s response: %w", label, err)
	}
	if len(payload) > maxResponseBytes {
		return fmt.Errorf("%s: %w", label, ErrResponseTooLarge)
	}

	var decoded response
	if err := json.Unmarshal(payload, &decoded); err != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("%s: rpc returned status %d", label, resp.StatusCode)
		}
		return fmt.Errorf("decode %s response: %w", label, err)
	}
	if decoded.Error != nil {
		c.logger.Debug("rpc error", "method", label, "name", decoded.Error.Name, "message", decoded.Error.Message)
		return fmt.Errorf("%s: %w", label, decoded.Error)
	}
	if len(decoded.Result) == 0 || string(decoded.Result) == "null" {
		return fmt.Errorf("%s: empty rpc result", label)
	}

	if err := json.Unmarshal(decoded.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", label, err)
	}

	return nil
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}

	return buf.String()
}
