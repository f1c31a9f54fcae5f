package tx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/near/borsh-go"

	"github.com/bnema/near-pool-cli/internal/domain"
)

const (
	keyTypeED25519 uint8 = 0

	actionFunctionCall borsh.Enum = 2
)

type PublicKey struct {
	KeyType uint8
	Data    [ed25519.PublicKeySize]byte
}

type Signature struct {
	KeyType uint8
	Data    [ed25519.SignatureSize]byte
}

type CreateAccount struct{}

type DeployContract struct {
	Code []byte
}

type FunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int
}

type Transfer struct {
	Deposit big.Int
}

// Action mirrors the NEAR action enum up to FunctionCall and Transfer; the
// variant order fixes the borsh discriminant.
type Action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  CreateAccount
	DeployContract DeployContract
	FunctionCall   FunctionCall
	Transfer       Transfer
}

type Transaction struct {
	SignerID   string
	PublicKey  PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [sha256.Size]byte
	Actions    []Action
}

type SignedTransaction struct {
	Transaction Transaction
	Signature   Signature
}

// Signed is a borsh encoded signed transaction with its base58 hash.
type Signed struct {
	Bytes []byte
	Hash  string
}

// Envelope holds the chain values needed to finalize a transaction.
type Envelope struct {
	PublicKey ed25519.PublicKey
	Nonce     uint64
	BlockHash string
}

func NewTransaction(tx domain.Transaction, envelope Envelope) (Transaction, error) {
	if len(tx.Actions) == 0 {
		return Transaction{}, errors.New("transaction has no actions")
	}
	if len(envelope.PublicKey) != ed25519.PublicKeySize {
		return Transaction{}, fmt.Errorf("%w: public key is %d bytes", ErrUnsupportedKey, len(envelope.PublicKey))
	}

	blockHash := base58.Decode(envelope.BlockHash)
	if len(blockHash) != sha256.Size {
		return Transaction{}, fmt.Errorf("block hash %q is not 32 bytes", envelope.BlockHash)
	}

	out := Transaction{
		SignerID:   tx.SignerID.String(),
		PublicKey:  PublicKey{KeyType: keyTypeED25519},
		Nonce:      envelope.Nonce,
		ReceiverID: tx.ReceiverID.String(),
		Actions:    make([]Action, 0, len(tx.Actions)),
	}
	copy(out.PublicKey.Data[:], envelope.PublicKey)
	copy(out.BlockHash[:], blockHash)

	for _, call := range tx.Actions {
		action := Action{
			Enum: actionFunctionCall,
			FunctionCall: FunctionCall{
				MethodName: call.MethodName,
				Args:       []byte(call.Args),
				Gas:        call.Gas,
			},
		}
		if call.Deposit != nil {
			action.FunctionCall.Deposit.Set(call.Deposit)
		}
		out.Actions = append(out.Actions, action)
	}

	return out, nil
}

func Encode(tx Transaction) ([]byte, error) {
	encoded, err := borsh.Serialize(tx)
	if err != nil {
		return nil, fmt.Errorf("borsh encode transaction: %w", err)
	}

	return encoded, nil
}

// Sign signs sha256(borsh(tx)) and returns the encoded signed transaction.
func Sign(tx Transaction, key ed25519.PrivateKey) (Signed, error) {
	encoded, err := Encode(tx)
	if err != nil {
		return Signed{}, err
	}

	hash := sha256.Sum256(encoded)
	signed := SignedTransaction{
		Transaction: tx,
		Signature:   Signature{KeyType: keyTypeED25519},
	}
	copy(signed.Signature.Data[:], ed25519.Sign(key, hash[:]))

	out, err := borsh.Serialize(signed)
	if err != nil {
		return Signed{}, fmt.Errorf("borsh encode signed transaction: %w", err)
	}

	return Signed{Bytes: out, Hash: base58.Encode(hash[:])}, nil
}
