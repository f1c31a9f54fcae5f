package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/sourcegraph/conc"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// BalanceAggregator reads the three dashboard figures for an account. It never
// fails: each query error degrades its fields and is logged.
type BalanceAggregator struct {
	chain  ports.ChainQuerier
	pool   domain.Pool
	logger *slog.Logger
}

func NewBalanceAggregator(chain ports.ChainQuerier, pool domain.Pool, logger *slog.Logger) *BalanceAggregator {
	if logger == nil {
		logger = slog.Default()
	}

	return &BalanceAggregator{chain: chain, pool: pool, logger: logger}
}

func (a *BalanceAggregator) Load(ctx context.Context, accountID domain.AccountID) domain.BalanceSnapshot {
	var (
		available           *big.Int
		staked, total       *big.Int
		availableErr        error
		stakedErr, totalErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		view, err := a.chain.ViewAccount(ctx, accountID, domain.FinalityOptimistic)
		if err != nil {
			availableErr = err
			return
		}
		available = view.Amount
	})
	wg.Go(func() {
		staked, stakedErr = a.poolBalance(ctx, accountID, domain.MethodGetAccountStakedBalance)
	})
	wg.Go(func() {
		total, totalErr = a.poolBalance(ctx, accountID, domain.MethodGetAccountTotalBalance)
	})
	wg.Wait()

	snapshot := domain.BalanceSnapshot{Account: accountID}

	if availableErr != nil || available == nil {
		a.logger.Warn("view account failed", "account", accountID, "error", availableErr)
		snapshot.Available = domain.UnavailableBalance()
	} else {
		snapshot.Available = domain.KnownBalance(available)
	}

	if stakedErr != nil || totalErr != nil {
		a.logger.Error("pool balance query failed",
			"account", accountID,
			"pool", a.pool.ID,
			"staked_error", stakedErr,
			"total_error", totalErr,
		)
		snapshot.Staked = domain.ZeroBalance()
		snapshot.Rewards = domain.ZeroBalance()
		return snapshot
	}

	snapshot.Staked = domain.KnownBalance(staked)
	snapshot.Rewards = domain.KnownBalance(domain.Rewards(total, staked))

	return snapshot
}

func (a *BalanceAggregator) poolBalance(ctx context.Context, accountID domain.AccountID, method string) (*big.Int, error) {
	raw, err := a.chain.CallFunction(ctx, a.pool.ID, method, map[string]string{"account_id": accountID.String()}, domain.FinalityOptimistic)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	return decodeYoctoResult(raw)
}

// decodeYoctoResult reads a view result that is a JSON string of yocto units.
func decodeYoctoResult(raw []byte) (*big.Int, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("decode balance result: %w", err)
	}

	return domain.ParseYocto(encoded)
}
