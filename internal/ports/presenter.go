package ports

import "github.com/bnema/near-pool-cli/internal/domain"

// Presenter is a passive sink for what the controller wants shown.
type Presenter interface {
	ShowConnected(accountID domain.AccountID)
	ShowDisconnected()
	ShowBalances(snapshot domain.BalanceSnapshot)
	ShowStatus(message domain.StatusMessage)
	HideStatus()
	ClearInput(field domain.InputField)
}
