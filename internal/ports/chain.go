package ports

import (
	"context"

	"github.com/bnema/near-pool-cli/internal/domain"
)

// ChainQuerier is the read side of a NEAR RPC node plus transaction broadcast.
type ChainQuerier interface {
	ViewAccount(ctx context.Context, accountID domain.AccountID, finality domain.Finality) (domain.AccountView, error)
	// CallFunction runs a view method and returns its raw result bytes.
	CallFunction(ctx context.Context, contractID domain.AccountID, method string, args any, finality domain.Finality) ([]byte, error)
	ViewAccessKey(ctx context.Context, accountID domain.AccountID, publicKey string, finality domain.Finality) (domain.AccessKeyView, error)
	BroadcastTxCommit(ctx context.Context, signedTx []byte) (domain.TxOutcome, error)
}
