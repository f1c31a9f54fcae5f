package domain

import "math/big"

const (
	UnavailablePlaceholder = "--"
	ZeroPlaceholder        = "0"
)

// BalanceField is one dashboard figure. Amount is nil when the value could
// not be computed and Placeholder is shown instead.
type BalanceField struct {
	Amount      *big.Int
	Placeholder string
}

func KnownBalance(yocto *big.Int) BalanceField {
	return BalanceField{Amount: yocto}
}

func UnavailableBalance() BalanceField {
	return BalanceField{Placeholder: UnavailablePlaceholder}
}

func ZeroBalance() BalanceField {
	return BalanceField{Placeholder: ZeroPlaceholder}
}

func (f BalanceField) Known() bool {
	return f.Amount != nil
}

func (f BalanceField) Display() string {
	if f.Amount == nil {
		if f.Placeholder == "" {
			return UnavailablePlaceholder
		}
		return f.Placeholder
	}

	return FormatDisplay(f.Amount)
}

type BalanceSnapshot struct {
	Account   AccountID
	Available BalanceField
	Staked    BalanceField
	Rewards   BalanceField
}

// Rewards is total minus staked. The result may be negative when the pool
// reports an inconsistent pair; callers render it as is.
func Rewards(total, staked *big.Int) *big.Int {
	return new(big.Int).Sub(total, staked)
}
