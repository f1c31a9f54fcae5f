package domain

import (
	"fmt"
	"math/big"
)

type IntentKind string

const (
	IntentStake    IntentKind = "stake"
	IntentUnstake  IntentKind = "unstake"
	IntentWithdraw IntentKind = "withdraw"
)

// DefaultMinStake is the smallest stake accepted, in whole NEAR.
const DefaultMinStake = "1"

// TransactionIntent is what the user asked for. Amount is empty for withdrawals.
type TransactionIntent struct {
	Kind   IntentKind
	Amount string
}

func StakeIntent(amount string) TransactionIntent {
	return TransactionIntent{Kind: IntentStake, Amount: amount}
}

func UnstakeIntent(amount string) TransactionIntent {
	return TransactionIntent{Kind: IntentUnstake, Amount: amount}
}

func WithdrawIntent() TransactionIntent {
	return TransactionIntent{Kind: IntentWithdraw}
}

// ValidateStakeAmount accepts amounts at or above minimum and returns them in yocto.
func ValidateStakeAmount(amount, minimum string) (*big.Int, error) {
	value, err := parseHumanAmount(amount)
	if err != nil {
		return nil, err
	}

	floor, err := parseHumanAmount(minimum)
	if err != nil {
		return nil, fmt.Errorf("minimum stake: %w", err)
	}
	if value.LessThan(floor) {
		return nil, fmt.Errorf("%w: %s < %s NEAR", ErrBelowMinimum, value.String(), floor.String())
	}

	return ParseNearAmount(amount)
}

// ValidateUnstakeAmount accepts any strictly positive amount and returns it in yocto.
func ValidateUnstakeAmount(amount string) (*big.Int, error) {
	value, err := parseHumanAmount(amount)
	if err != nil {
		return nil, err
	}
	if !value.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveAmount, value.String())
	}

	return ParseNearAmount(amount)
}
