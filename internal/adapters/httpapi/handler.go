package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

const maxBodyBytes = 1 << 16

// Controller is the part of the application controller exposed over HTTP.
type Controller interface {
	Pool() domain.Pool
	RefreshBalances(ctx context.Context) (domain.BalanceSnapshot, error)
	Stake(ctx context.Context, amount string) (domain.TxOutcome, error)
	Unstake(ctx context.Context, amount string) (domain.TxOutcome, error)
	Withdraw(ctx context.Context) (domain.TxOutcome, error)
	Disconnect(ctx context.Context) error
}

// Source is the view the controller reports to. Submitted amounts are
// recorded as input values so GET /api/state shows what is pending.
type Source interface {
	Snapshot() application.ViewSnapshot
	SetInput(field domain.InputField, value string)
}

type Handler struct {
	controller Controller
	source     Source
	logger     *slog.Logger
}

func NewHandler(controller Controller, source Source, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{controller: controller, source: source, logger: logger}
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type balanceField struct {
	Display string `json:"display"`
	Yocto   string `json:"yocto,omitempty"`
}

type statusResponse struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
	Visible  bool   `json:"visible"`
}

type stateResponse struct {
	Network   string                  `json:"network"`
	Pool      string                  `json:"pool"`
	MinStake  string                  `json:"min_stake"`
	Connected bool                    `json:"connected"`
	AccountID string                  `json:"account_id,omitempty"`
	Balances  map[string]balanceField `json:"balances,omitempty"`
	Inputs    map[string]string       `json:"inputs,omitempty"`
	Status    *statusResponse         `json:"status,omitempty"`
}

type txResponse struct {
	Kind  string         `json:"kind"`
	Hash  string         `json:"hash"`
	State *stateResponse `json:"state"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps controller errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) state() *stateResponse {
	view := h.source.Snapshot()
	pool := h.controller.Pool()

	resp := &stateResponse{
		Network:   string(pool.Network),
		Pool:      pool.ID.String(),
		MinStake:  pool.MinStake,
		Connected: view.Connected,
		AccountID: view.AccountID.String(),
	}
	if view.HasBalances {
		resp.Balances = map[string]balanceField{
			"available": toBalanceField(view.Balances.Available),
			"staked":    toBalanceField(view.Balances.Staked),
			"rewards":   toBalanceField(view.Balances.Rewards),
		}
	}
	for field, value := range view.Inputs {
		if resp.Inputs == nil {
			resp.Inputs = map[string]string{}
		}
		resp.Inputs[string(field)] = value
	}
	if view.Status.Text != "" {
		resp.Status = &statusResponse{
			Text:     view.Status.Text,
			Severity: string(view.Status.Severity),
			Visible:  view.StatusVisible,
		}
	}

	return resp
}

func toBalanceField(field domain.BalanceField) balanceField {
	out := balanceField{Display: field.Display() + " NEAR"}
	if field.Known() {
		out.Yocto = field.Amount.String()
	}
	return out
}

// GetState handles GET /api/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

// Refresh handles POST /api/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if _, err := h.controller.RefreshBalances(r.Context()); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.state())
}

// Stake handles POST /api/stake
func (h *Handler) Stake(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	h.source.SetInput(domain.InputStakeAmount, req.Amount)
	outcome, err := h.controller.Stake(r.Context(), req.Amount)
	h.writeOutcome(w, domain.IntentStake, outcome, err)
}

// Unstake handles POST /api/unstake
func (h *Handler) Unstake(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	h.source.SetInput(domain.InputUnstakeAmount, req.Amount)
	outcome, err := h.controller.Unstake(r.Context(), req.Amount)
	h.writeOutcome(w, domain.IntentUnstake, outcome, err)
}

// Withdraw handles POST /api/withdraw
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.controller.Withdraw(r.Context())
	h.writeOutcome(w, domain.IntentWithdraw, outcome, err)
}

// Disconnect handles POST /api/disconnect
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Disconnect(r.Context()); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.state())
}

func (h *Handler) decodeAmount(w http.ResponseWriter, r *http.Request) (amountRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var req amountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return req, false
	}

	return req, true
}

func (h *Handler) writeOutcome(w http.ResponseWriter, kind domain.IntentKind, outcome domain.TxOutcome, err error) {
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("api transaction failed", "kind", kind, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, txResponse{Kind: string(kind), Hash: outcome.Hash, State: h.state()})
}
