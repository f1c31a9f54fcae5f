package domain

import (
	"fmt"
	"strings"
)

const (
	minAccountIDLength = 2
	maxAccountIDLength = 64
)

type AccountID string

func (id AccountID) String() string {
	return string(id)
}

// Validate checks the NEAR account naming rules: lowercase alphanumerics
// separated by single '-', '_' or '.' characters, 2 to 64 bytes long.
func (id AccountID) Validate() error {
	raw := string(id)
	if len(raw) < minAccountIDLength || len(raw) > maxAccountIDLength {
		return fmt.Errorf("%w: %q must be %d-%d characters", ErrInvalidAccountID, raw, minAccountIDLength, maxAccountIDLength)
	}

	prevSeparator := true
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			prevSeparator = false
		case r == '-' || r == '_' || r == '.':
			if prevSeparator {
				return fmt.Errorf("%w: %q has a misplaced separator", ErrInvalidAccountID, raw)
			}
			prevSeparator = true
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidAccountID, raw, r)
		}
	}
	if prevSeparator {
		return fmt.Errorf("%w: %q ends with a separator", ErrInvalidAccountID, raw)
	}

	return nil
}

func NormalizeAccountID(raw string) AccountID {
	return AccountID(strings.ToLower(strings.TrimSpace(raw)))
}

// Session is the connected wallet account for this process. The zero value
// means no wallet is connected.
type Session struct {
	AccountID AccountID
}

func (s Session) Connected() bool {
	return s.AccountID != ""
}
