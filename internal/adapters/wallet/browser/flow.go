package browser

import (
	"context"
	"fmt"
	"slices"
	"time"

	neartx "github.com/bnema/near-pool-cli/internal/adapters/near/tx"
	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

const defaultLoginTimeout = 5 * time.Minute

// Flow adds a freshly generated access key to a wallet account through the
// wallet's web login page.
type Flow struct {
	WalletURL  string
	ListenAddr string
	Timeout    time.Duration
	Chain      ports.ChainQuerier
	// Announce receives the login URL the user has to open.
	Announce func(loginURL string)
}

func (f Flow) Run(ctx context.Context) (domain.Credential, error) {
	pair, err := neartx.GenerateKeyPair()
	if err != nil {
		return domain.Credential{}, err
	}
	state, err := NewState()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("generate login state: %w", err)
	}

	server, err := StartCallbackServer(f.ListenAddr, state)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("start callback server: %w", err)
	}

	loginURL, err := BuildLoginURL(LoginRequest{
		WalletURL:  f.WalletURL,
		PublicKey:  pair.PublicKeyString(),
		SuccessURL: server.SuccessURL(),
		FailureURL: server.FailureURL(),
	})
	if err != nil {
		_ = server.Close()
		return domain.Credential{}, fmt.Errorf("build login url: %w", err)
	}
	if f.Announce != nil {
		f.Announce(loginURL)
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultLoginTimeout
	}
	approval, err := server.Wait(ctx, timeout)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("wait for wallet callback: %w", err)
	}

	publicKey := pair.PublicKeyString()
	if approval.PublicKey != publicKey && !slices.Contains(approval.AllKeys, publicKey) {
		return domain.Credential{}, fmt.Errorf("wallet approved key %q, expected %q", approval.PublicKey, publicKey)
	}

	accountID := domain.NormalizeAccountID(approval.AccountID)
	if err := accountID.Validate(); err != nil {
		return domain.Credential{}, err
	}

	if f.Chain != nil {
		if _, err := f.Chain.ViewAccessKey(ctx, accountID, publicKey, domain.FinalityFinal); err != nil {
			return domain.Credential{}, fmt.Errorf("verify access key on chain: %w", err)
		}
	}

	return domain.Credential{
		AccountID:  accountID,
		PublicKey:  publicKey,
		PrivateKey: pair.PrivateKeyString(),
	}, nil
}
