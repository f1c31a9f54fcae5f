package ports

import (
	"context"

	"github.com/bnema/near-pool-cli/internal/domain"
)

type WalletConnector interface {
	SignIn(ctx context.Context, credential domain.Credential) error
	SignOut(ctx context.Context, accountID domain.AccountID) error
	SignAndSendTransaction(ctx context.Context, tx domain.Transaction) (domain.TxOutcome, error)
	// SignAndSendTransactions submits in order and stops at the first failure.
	SignAndSendTransactions(ctx context.Context, txs []domain.Transaction) ([]domain.TxOutcome, error)
}
