package application

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/near-pool-cli/internal/domain"
)

func balancesFor(account domain.AccountID) domain.BalanceSnapshot {
	return domain.BalanceSnapshot{
		Account:   account,
		Available: domain.KnownBalance(big.NewInt(7)),
		Staked:    domain.ZeroBalance(),
		Rewards:   domain.ZeroBalance(),
	}
}

func TestViewStateShowsBalancesOfConnectedAccount(t *testing.T) {
	view := NewViewState()
	view.ShowConnected("alice.near")

	view.ShowBalances(balancesFor("alice.near"))

	snapshot := view.Snapshot()
	assert.True(t, snapshot.HasBalances)
	assert.Equal(t, domain.AccountID("alice.near"), snapshot.Balances.Account)
}

func TestViewStateDropsBalancesAfterDisconnect(t *testing.T) {
	view := NewViewState()
	view.ShowConnected("alice.near")
	view.ShowDisconnected()

	view.ShowBalances(balancesFor("alice.near"))

	snapshot := view.Snapshot()
	assert.False(t, snapshot.HasBalances)
	assert.False(t, snapshot.Connected)
}

func TestViewStateDropsBalancesOfPreviousAccount(t *testing.T) {
	view := NewViewState()
	view.ShowConnected("alice.near")
	view.ShowConnected("bob.near")

	view.ShowBalances(balancesFor("alice.near"))
	assert.False(t, view.Snapshot().HasBalances)

	view.ShowBalances(balancesFor("bob.near"))
	assert.True(t, view.Snapshot().HasBalances)
}

func TestViewStateSetInputIsCopiedOut(t *testing.T) {
	view := NewViewState()
	view.SetInput(domain.InputStakeAmount, "3")

	snapshot := view.Snapshot()
	snapshot.Inputs[domain.InputStakeAmount] = "changed"

	assert.Equal(t, "3", view.Snapshot().Inputs[domain.InputStakeAmount])
	view.ClearInput(domain.InputStakeAmount)
	assert.Empty(t, view.Snapshot().Inputs[domain.InputStakeAmount])
}
