package tx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const keyPrefix = "ed25519:"

var ErrUnsupportedKey = errors.New("unsupported key encoding")

// KeyPair is an ed25519 access key.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

func GenerateKeyPair() (KeyPair, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}

	return KeyPair{Public: public, Private: private}, nil
}

// ParseKeyPair reads a near-cli private key. Both the 64-byte expanded form
// and a bare 32-byte seed are accepted.
func ParseKeyPair(encoded string) (KeyPair, error) {
	raw, err := decodeKey(encoded)
	if err != nil {
		return KeyPair{}, err
	}

	var private ed25519.PrivateKey
	switch len(raw) {
	case ed25519.PrivateKeySize:
		private = ed25519.PrivateKey(raw)
	case ed25519.SeedSize:
		private = ed25519.NewKeyFromSeed(raw)
	default:
		return KeyPair{}, fmt.Errorf("%w: private key is %d bytes", ErrUnsupportedKey, len(raw))
	}

	public, ok := private.Public().(ed25519.PublicKey)
	if !ok {
		return KeyPair{}, fmt.Errorf("%w: cannot derive public key", ErrUnsupportedKey)
	}

	return KeyPair{Public: public, Private: private}, nil
}

func ParsePublicKey(encoded string) (ed25519.PublicKey, error) {
	raw, err := decodeKey(encoded)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrUnsupportedKey, len(raw))
	}

	return ed25519.PublicKey(raw), nil
}

func FormatPublicKey(key ed25519.PublicKey) string {
	return keyPrefix + base58.Encode(key)
}

func FormatPrivateKey(key ed25519.PrivateKey) string {
	return keyPrefix + base58.Encode(key)
}

func (k KeyPair) PublicKeyString() string {
	return FormatPublicKey(k.Public)
}

func (k KeyPair) PrivateKeyString() string {
	return FormatPrivateKey(k.Private)
}

func decodeKey(encoded string) ([]byte, error) {
	trimmed := strings.TrimSpace(encoded)
	body, ok := strings.CutPrefix(trimmed, keyPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q prefix", ErrUnsupportedKey, keyPrefix)
	}
	raw := base58.Decode(body)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: invalid base58", ErrUnsupportedKey)
	}

	return raw, nil
}
