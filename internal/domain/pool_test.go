package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pool    Pool
		wantErr string
	}{
		{
			name: "valid",
			pool: Pool{ID: "frutero.pool.near", Network: NetworkMainnet, MinStake: "1", Gas: DefaultGas},
		},
		{
			name:    "missing id",
			pool:    Pool{Network: NetworkMainnet, MinStake: "1", Gas: DefaultGas},
			wantErr: "pool id is required",
		},
		{
			name:    "bad id",
			pool:    Pool{ID: "Frutero..pool", Network: NetworkMainnet, MinStake: "1", Gas: DefaultGas},
			wantErr: "invalid account id",
		},
		{
			name:    "unsupported network",
			pool:    Pool{ID: "frutero.pool.near", Network: "localnet", MinStake: "1", Gas: DefaultGas},
			wantErr: "unsupported network",
		},
		{
			name:    "bad minimum",
			pool:    Pool{ID: "frutero.pool.near", Network: NetworkMainnet, MinStake: "one", Gas: DefaultGas},
			wantErr: "min stake",
		},
		{
			name:    "zero gas",
			pool:    Pool{ID: "frutero.pool.near", Network: NetworkMainnet, MinStake: "1"},
			wantErr: "gas allowance is required",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.pool.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestPoolWithDefaults(t *testing.T) {
	t.Parallel()

	pool := Pool{}.WithDefaults()

	require.NoError(t, pool.Validate())
	assert.Equal(t, DefaultPoolID, pool.ID)
	assert.Equal(t, NetworkMainnet, pool.Network)
	assert.Equal(t, "1", pool.MinStake)
}

func TestAccountIDValidate(t *testing.T) {
	t.Parallel()

	valid := []AccountID{"alice.near", "bob_1.testnet", "a1", "frutero.pool.near"}
	for _, id := range valid {
		assert.NoError(t, id.Validate(), id)
	}

	invalid := []AccountID{"", "a", "Alice.near", ".alice", "alice.", "al..ice", "ali ce"}
	for _, id := range invalid {
		assert.ErrorIs(t, id.Validate(), ErrInvalidAccountID, id)
	}

	assert.Equal(t, AccountID("alice.near"), NormalizeAccountID("  Alice.NEAR "))
}
