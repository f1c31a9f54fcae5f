package application

import (
	"maps"
	"sync"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

var _ ports.Presenter = (*ViewState)(nil)

// ViewSnapshot is a copy of everything a presenter has been told to show.
type ViewSnapshot struct {
	Connected     bool
	AccountID     domain.AccountID
	Balances      domain.BalanceSnapshot
	HasBalances   bool
	Status        domain.StatusMessage
	StatusVisible bool
	Inputs        map[domain.InputField]string
}

// ViewState is an in-memory presenter. The CLI and the HTTP API read it after
// driving the controller.
type ViewState struct {
	mu   sync.RWMutex
	view ViewSnapshot
}

func NewViewState() *ViewState {
	return &ViewState{view: ViewSnapshot{Inputs: map[domain.InputField]string{}}}
}

func (v *ViewState) Snapshot() ViewSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	view := v.view
	view.Inputs = maps.Clone(v.view.Inputs)

	return view
}

func (v *ViewState) SetInput(field domain.InputField, value string) {
	v.mu.Lock()
	v.view.Inputs[field] = value
	v.mu.Unlock()
}

func (v *ViewState) ShowConnected(accountID domain.AccountID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.view.AccountID != accountID {
		v.view.Balances = domain.BalanceSnapshot{}
		v.view.HasBalances = false
	}
	v.view.Connected = true
	v.view.AccountID = accountID
}

func (v *ViewState) ShowDisconnected() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.view.Connected = false
	v.view.AccountID = ""
	v.view.Balances = domain.BalanceSnapshot{}
	v.view.HasBalances = false
}

// ShowBalances ignores snapshots for an account other than the connected one,
// so a refresh that finishes after a disconnect or switch is dropped.
func (v *ViewState) ShowBalances(snapshot domain.BalanceSnapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.view.Connected || snapshot.Account != v.view.AccountID {
		return
	}
	v.view.Balances = snapshot
	v.view.HasBalances = true
}

func (v *ViewState) ShowStatus(message domain.StatusMessage) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.view.Status = message
	v.view.StatusVisible = true
}

func (v *ViewState) HideStatus() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.view.StatusVisible = false
}

func (v *ViewState) ClearInput(field domain.InputField) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.view.Inputs[field] = ""
}

// Presenters fans every call out to each presenter in order.
type Presenters []ports.Presenter

var _ ports.Presenter = Presenters(nil)

func (p Presenters) ShowConnected(accountID domain.AccountID) {
	for _, presenter := range p {
		presenter.ShowConnected(accountID)
	}
}

func (p Presenters) ShowDisconnected() {
	for _, presenter := range p {
		presenter.ShowDisconnected()
	}
}

func (p Presenters) ShowBalances(snapshot domain.BalanceSnapshot) {
	for _, presenter := range p {
		presenter.ShowBalances(snapshot)
	}
}

func (p Presenters) ShowStatus(message domain.StatusMessage) {
	for _, presenter := range p {
		presenter.ShowStatus(message)
	}
}

func (p Presenters) HideStatus() {
	for _, presenter := range p {
		presenter.HideStatus()
	}
}

func (p Presenters) ClearInput(field domain.InputField) {
	for _, presenter := range p {
		presenter.ClearInput(field)
	}
}
