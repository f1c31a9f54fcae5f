package application

import (
	"context"
	"fmt"
	"math/big"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// Submitter turns intents into pool function calls and hands them to the wallet.
type Submitter struct {
	state  SessionReader
	wallet ports.WalletConnector
	pool   domain.Pool
}

func NewSubmitter(state SessionReader, wallet ports.WalletConnector, pool domain.Pool) *Submitter {
	return &Submitter{state: state, wallet: wallet, pool: pool}
}

// Plan validates intent against the active session and builds its transaction
// without touching the network.
func (s *Submitter) Plan(intent domain.TransactionIntent) (domain.Transaction, error) {
	session := s.state.Session()
	if !session.Connected() {
		return domain.Transaction{}, domain.ErrWalletNotConnected
	}

	var (
		call domain.FunctionCall
		err  error
	)
	switch intent.Kind {
	case domain.IntentStake:
		var deposit *big.Int
		deposit, err = domain.ValidateStakeAmount(intent.Amount, s.pool.MinStake)
		if err != nil {
			return domain.Transaction{}, err
		}
		call, err = domain.NewFunctionCall(domain.MethodDepositAndStake, nil, s.pool.Gas, deposit)
	case domain.IntentUnstake:
		var amount *big.Int
		amount, err = domain.ValidateUnstakeAmount(intent.Amount)
		if err != nil {
			return domain.Transaction{}, err
		}
		call, err = domain.NewFunctionCall(domain.MethodUnstake, map[string]string{"amount": amount.String()}, s.pool.Gas, nil)
	case domain.IntentWithdraw:
		call, err = domain.NewFunctionCall(domain.MethodWithdrawAll, nil, s.pool.Gas, nil)
	default:
		return domain.Transaction{}, fmt.Errorf("unsupported intent %q", intent.Kind)
	}
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		SignerID:   session.AccountID,
		ReceiverID: s.pool.ID,
		Actions:    []domain.FunctionCall{call},
	}, nil
}

// Submit plans intent and sends it. Stakes go through the single-transaction
// wallet call, unstakes and withdrawals through the batch call. Wallet errors
// are returned unwrapped so their text reaches the user as is.
func (s *Submitter) Submit(ctx context.Context, intent domain.TransactionIntent) (domain.TxOutcome, error) {
	tx, err := s.Plan(intent)
	if err != nil {
		return domain.TxOutcome{}, err
	}

	if intent.Kind == domain.IntentStake {
		return s.wallet.SignAndSendTransaction(ctx, tx)
	}

	outcomes, err := s.wallet.SignAndSendTransactions(ctx, []domain.Transaction{tx})
	if err != nil {
		return domain.TxOutcome{}, err
	}
	if len(outcomes) == 0 {
		return domain.TxOutcome{}, fmt.Errorf("wallet returned no outcome for %s", intent.Kind)
	}

	return outcomes[len(outcomes)-1], nil
}
