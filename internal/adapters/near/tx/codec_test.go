package tx

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/near-pool-cli/internal/domain"
)

func fixedKeyPair(t *testing.T) KeyPair {
	t.Helper()

	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	private := ed25519.NewKeyFromSeed(seed)
	pair, err := ParseKeyPair(FormatPrivateKey(private))
	require.NoError(t, err)

	return pair
}

func blockHashFixture() string {
	return base58.Encode(bytes.Repeat([]byte{9}, sha256.Size))
}

func writeString(buf *bytes.Buffer, value string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(value)))
	buf.WriteString(value)
}

func TestEncodeMatchesNearLayout(t *testing.T) {
	pair := fixedKeyPair(t)
	deposit, ok := new(big.Int).SetString("5000000000000000000000000", 10)
	require.True(t, ok)

	call, err := domain.NewFunctionCall(domain.MethodDepositAndStake, nil, domain.DefaultGas, deposit)
	require.NoError(t, err)

	tx, err := NewTransaction(domain.Transaction{
		SignerID:   "alice.near",
		ReceiverID: domain.DefaultPoolID,
		Actions:    []domain.FunctionCall{call},
	}, Envelope{PublicKey: pair.Public, Nonce: 42, BlockHash: blockHashFixture()})
	require.NoError(t, err)

	encoded, err := Encode(tx)
	require.NoError(t, err)

	var want bytes.Buffer
	writeString(&want, "alice.near")
	want.WriteByte(0)
	want.Write(pair.Public)
	_ = binary.Write(&want, binary.LittleEndian, uint64(42))
	writeString(&want, "frutero.pool.near")
	want.Write(bytes.Repeat([]byte{9}, sha256.Size))
	_ = binary.Write(&want, binary.LittleEndian, uint32(1))
	want.WriteByte(2)
	writeString(&want, "deposit_and_stake")
	writeString(&want, "{}")
	_ = binary.Write(&want, binary.LittleEndian, domain.DefaultGas)
	u128 := make([]byte, 16)
	be := deposit.Bytes()
	for i := range be {
		u128[i] = be[len(be)-1-i]
	}
	want.Write(u128)

	assert.Equal(t, want.Bytes(), encoded)
}

func TestSignProducesVerifiableSignature(t *testing.T) {
	pair := fixedKeyPair(t)
	call, err := domain.NewFunctionCall(domain.MethodWithdrawAll, nil, domain.DefaultGas, nil)
	require.NoError(t, err)

	tx, err := NewTransaction(domain.Transaction{
		SignerID:   "alice.near",
		ReceiverID: domain.DefaultPoolID,
		Actions:    []domain.FunctionCall{call},
	}, Envelope{PublicKey: pair.Public, Nonce: 1, BlockHash: blockHashFixture()})
	require.NoError(t, err)

	signed, err := Sign(tx, pair.Private)
	require.NoError(t, err)

	encoded, err := Encode(tx)
	require.NoError(t, err)
	hash := sha256.Sum256(encoded)
	assert.Equal(t, base58.Encode(hash[:]), signed.Hash)

	require.True(t, bytes.HasPrefix(signed.Bytes, encoded))
	tail := signed.Bytes[len(encoded):]
	require.Len(t, tail, 1+ed25519.SignatureSize)
	assert.Equal(t, byte(0), tail[0])
	assert.True(t, ed25519.Verify(pair.Public, hash[:], tail[1:]))
}

func TestNewTransactionRejectsBadEnvelope(t *testing.T) {
	pair := fixedKeyPair(t)
	call, err := domain.NewFunctionCall(domain.MethodWithdrawAll, nil, domain.DefaultGas, nil)
	require.NoError(t, err)
	tx := domain.Transaction{SignerID: "alice.near", ReceiverID: domain.DefaultPoolID, Actions: []domain.FunctionCall{call}}

	_, err = NewTransaction(tx, Envelope{PublicKey: pair.Public, BlockHash: "abc"})
	require.Error(t, err)

	_, err = NewTransaction(domain.Transaction{SignerID: "alice.near"}, Envelope{PublicKey: pair.Public, BlockHash: blockHashFixture()})
	require.Error(t, err)
}

func TestParseKeyPairAcceptsSeedAndExpandedForms(t *testing.T) {
	seed := bytes.Repeat([]byte{3}, ed25519.SeedSize)
	expanded := ed25519.NewKeyFromSeed(seed)

	fromSeed, err := ParseKeyPair(keyPrefix + base58.Encode(seed))
	require.NoError(t, err)
	fromExpanded, err := ParseKeyPair(FormatPrivateKey(expanded))
	require.NoError(t, err)

	assert.Equal(t, fromExpanded.PublicKeyString(), fromSeed.PublicKeyString())

	public, err := ParsePublicKey(fromSeed.PublicKeyString())
	require.NoError(t, err)
	assert.Equal(t, fromSeed.Public, public)
}

func TestParseKeyPairRejectsUnknownEncodings(t *testing.T) {
	for _, raw := range []string{"", "secp256k1:abc", "ed25519:", "ed25519:" + base58.Encode([]byte{1, 2, 3})} {
		_, err := ParseKeyPair(raw)
		require.ErrorIs(t, err, ErrUnsupportedKey, raw)
	}
}

func TestGenerateKeyPairRoundTrips(t *testing.T) {
	pair, err := GenerateKeyPair()
	require.NoError(t, err)

	parsed, err := ParseKeyPair(pair.PrivateKeyString())
	require.NoError(t, err)
	assert.Equal(t, pair.PublicKeyString(), parsed.PublicKeyString())
}
