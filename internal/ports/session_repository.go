package ports

import (
	"context"

	"github.com/bnema/near-pool-cli/internal/domain"
)

// SessionRepository persists the wallet connector's account list per network.
type SessionRepository interface {
	Load(ctx context.Context, network domain.Network) ([]domain.AccountID, error)
	Save(ctx context.Context, network domain.Network, accounts []domain.AccountID) error
}
