package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrInvalidAccountID   = errors.New("invalid account id")

	ErrAmountRequired    = errors.New("amount is required")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrBelowMinimum      = errors.New("amount below minimum stake")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// IsValidationError reports whether err was rejected before any network call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrAmountRequired) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrNonPositiveAmount)
}
