package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NearNominationExp is the number of yocto units in one NEAR, as a power of ten.
const NearNominationExp = 24

const displayDecimals = 2

// ParseNearAmount converts a human NEAR amount ("2.5") into yocto units.
// More than 24 fractional digits cannot be represented and are rejected.
func ParseNearAmount(human string) (*big.Int, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(human), ",", "")
	if trimmed == "" {
		return nil, ErrAmountRequired
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, human)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, human)
	}
	if value.Exponent() < -NearNominationExp {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, human, NearNominationExp)
	}

	return value.Shift(NearNominationExp).BigInt(), nil
}

// ParseYocto reads a canonical base-10 yocto amount as returned by RPC nodes.
func ParseYocto(raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a yocto amount", ErrInvalidAmount, raw)
	}

	return value, nil
}

// FormatNearAmount renders yocto units as a full-precision NEAR string.
func FormatNearAmount(yocto *big.Int) string {
	if yocto == nil {
		return "0"
	}

	return decimal.NewFromBigInt(yocto, -NearNominationExp).String()
}

// FormatDisplay renders yocto units rounded to two decimals.
func FormatDisplay(yocto *big.Int) string {
	if yocto == nil {
		return decimal.Zero.StringFixed(displayDecimals)
	}

	return decimal.NewFromBigInt(yocto, -NearNominationExp).StringFixed(displayDecimals)
}

func parseHumanAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, ErrAmountRequired
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return value, nil
}
