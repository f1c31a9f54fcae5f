package application

import (
	"context"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

type refreshFunc func(ctx context.Context, accountID domain.AccountID)

// AccountTracker mirrors the account list into the session and the
// connected/disconnected views. Every notification re-derives the whole
// state, so repeated identical lists each trigger a refresh.
type AccountTracker struct {
	state     *AppState
	presenter ports.Presenter
	refresh   refreshFunc
}

func NewAccountTracker(state *AppState, presenter ports.Presenter, refresh refreshFunc) *AccountTracker {
	return &AccountTracker{state: state, presenter: presenter, refresh: refresh}
}

func (t *AccountTracker) OnAccountsChanged(ctx context.Context, accounts []domain.AccountID) {
	if len(accounts) == 0 {
		t.state.clearSession()
		t.presenter.ShowDisconnected()
		return
	}

	accountID := accounts[0]
	t.state.setSession(accountID)
	t.presenter.ShowConnected(accountID)
	if t.refresh != nil {
		t.refresh(ctx, accountID)
	}
}
