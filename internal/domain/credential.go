package domain

import (
	"fmt"
	"strings"
)

const ed25519KeyPrefix = "ed25519:"

// Credential is an access key for an account, in the near-cli credentials
// file layout. Keys are "ed25519:<base58>" strings.
type Credential struct {
	AccountID  AccountID `json:"account_id"`
	PublicKey  string    `json:"public_key"`
	PrivateKey string    `json:"private_key"`
}

func (c Credential) Validate() error {
	if err := c.AccountID.Validate(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.PrivateKey, ed25519KeyPrefix) {
		return fmt.Errorf("private key for %s must start with %q", c.AccountID, ed25519KeyPrefix)
	}
	if c.PublicKey != "" && !strings.HasPrefix(c.PublicKey, ed25519KeyPrefix) {
		return fmt.Errorf("public key for %s must start with %q", c.AccountID, ed25519KeyPrefix)
	}

	return nil
}
