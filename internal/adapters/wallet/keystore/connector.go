package keystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	neartx "github.com/bnema/near-pool-cli/internal/adapters/near/tx"
	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// Connector signs transactions locally with access keys kept in a secret
// store and broadcasts them through an RPC node.
type Connector struct {
	network domain.Network
	store   ports.SecretStore
	chain   ports.ChainQuerier
	logger  *slog.Logger
}

var _ ports.WalletConnector = (*Connector)(nil)

func NewConnector(network domain.Network, store ports.SecretStore, chain ports.ChainQuerier, logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.Default()
	}

	return &Connector{network: network, store: store, chain: chain, logger: logger}
}

// CredentialKey is the secret store key of an account, in near-cli layout.
func CredentialKey(network domain.Network, accountID domain.AccountID) string {
	return fmt.Sprintf("%s/%s.json", network, accountID)
}

func (c *Connector) SignIn(ctx context.Context, credential domain.Credential) error {
	if err := credential.Validate(); err != nil {
		return err
	}

	pair, err := neartx.ParseKeyPair(credential.PrivateKey)
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}
	derived := pair.PublicKeyString()
	if credential.PublicKey != "" && credential.PublicKey != derived {
		return fmt.Errorf("public key %s does not match private key (%s)", credential.PublicKey, derived)
	}
	credential.PublicKey = derived

	encoded, err := json.MarshalIndent(credential, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := c.store.Put(ctx, CredentialKey(c.network, credential.AccountID), string(encoded)); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	c.logger.Info("wallet signed in", "account", credential.AccountID, "network", c.network, "public_key", derived)

	return nil
}

func (c *Connector) SignOut(ctx context.Context, accountID domain.AccountID) error {
	if err := c.store.Delete(ctx, CredentialKey(c.network, accountID)); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	c.logger.Info("wallet signed out", "account", accountID, "network", c.network)

	return nil
}

// Credential loads the stored access key of accountID.
func (c *Connector) Credential(ctx context.Context, accountID domain.AccountID) (domain.Credential, error) {
	raw, err := c.store.Get(ctx, CredentialKey(c.network, accountID))
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Credential{}, fmt.Errorf("%w: no access key for %s", domain.ErrWalletNotConnected, accountID)
		}
		return domain.Credential{}, fmt.Errorf("load credential: %w", err)
	}

	var credential domain.Credential
	if err := json.Unmarshal([]byte(raw), &credential); err != nil {
		return domain.Credential{}, fmt.Errorf("decode credential for %s: %w", accountID, err)
	}
	if credential.AccountID == "" {
		credential.AccountID = accountID
	}

	return credential, nil
}

func (c *Connector) SignAndSendTransaction(ctx context.Context, tx domain.Transaction) (domain.TxOutcome, error) {
	pair, err := c.keyPair(ctx, tx.SignerID)
	if err != nil {
		return domain.TxOutcome{}, err
	}

	return c.send(ctx, pair, tx)
}

func (c *Connector) SignAndSendTransactions(ctx context.Context, txs []domain.Transaction) ([]domain.TxOutcome, error) {
	outcomes := make([]domain.TxOutcome, 0, len(txs))
	for i, tx := range txs {
		pair, err := c.keyPair(ctx, tx.SignerID)
		if err != nil {
			return outcomes, err
		}
		outcome, err := c.send(ctx, pair, tx)
		if err != nil {
			if len(txs) > 1 {
				return outcomes, fmt.Errorf("transaction %d of %d: %w", i+1, len(txs), err)
			}
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (c *Connector) keyPair(ctx context.Context, accountID domain.AccountID) (neartx.KeyPair, error) {
	credential, err := c.Credential(ctx, accountID)
	if err != nil {
		return neartx.KeyPair{}, err
	}

	pair, err := neartx.ParseKeyPair(credential.PrivateKey)
	if err != nil {
		return neartx.KeyPair{}, fmt.Errorf("parse private key for %s: %w", accountID, err)
	}

	return pair, nil
}

// send reads a fresh nonce and block hash for every transaction so a batch
// never reuses a nonce.
func (c *Connector) send(ctx context.Context, pair neartx.KeyPair, tx domain.Transaction) (domain.TxOutcome, error) {
	accessKey, err := c.chain.ViewAccessKey(ctx, tx.SignerID, pair.PublicKeyString(), domain.FinalityFinal)
	if err != nil {
		return domain.TxOutcome{}, fmt.Errorf("view access key: %w", err)
	}

	unsigned, err := neartx.NewTransaction(tx, neartx.Envelope{
		PublicKey: pair.Public,
		Nonce:     accessKey.Nonce + 1,
		BlockHash: accessKey.BlockHash,
	})
	if err != nil {
		return domain.TxOutcome{}, fmt.Errorf("build transaction: %w", err)
	}

	signed, err := neartx.Sign(unsigned, pair.Private)
	if err != nil {
		return domain.TxOutcome{}, fmt.Errorf("sign transaction: %w", err)
	}
	c.logger.Debug("broadcasting transaction", "signer", tx.SignerID, "receiver", tx.ReceiverID, "hash", signed.Hash, "nonce", unsigned.Nonce)

	outcome, err := c.chain.BroadcastTxCommit(ctx, signed.Bytes)
	if err != nil {
		return outcome, err
	}
	if outcome.Hash == "" {
		outcome.Hash = signed.Hash
	}

	return outcome, nil
}
