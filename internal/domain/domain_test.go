package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yocto(t *testing.T, human string) *big.Int {
	t.Helper()
	v, err := ParseNearAmount(human)
	require.NoError(t, err)
	return v
}

func TestParseNearAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "whole", in: "5", want: "5000000000000000000000000"},
		{name: "fraction", in: "2.5", want: "2500000000000000000000000"},
		{name: "smallest unit", in: "0.000000000000000000000001", want: "1"},
		{name: "thousands separator", in: "1,000", want: "1000000000000000000000000000"},
		{name: "empty", in: "  ", wantErr: ErrAmountRequired},
		{name: "garbage", in: "abc", wantErr: ErrInvalidAmount},
		{name: "negative", in: "-1", wantErr: ErrInvalidAmount},
		{name: "too precise", in: "0.0000000000000000000000001", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNearAmount(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatDisplayRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, "2.50", FormatDisplay(yocto(t, "2.5")))
	assert.Equal(t, "0.00", FormatDisplay(big.NewInt(1)))
	assert.Equal(t, "1.24", FormatDisplay(yocto(t, "1.235")))
	assert.Equal(t, "0.00", FormatDisplay(nil))
	assert.Equal(t, "2.5", FormatNearAmount(yocto(t, "2.5")))
}

func TestRewardsSubtractionBeyondFloatRange(t *testing.T) {
	tests := []struct {
		total  string
		staked string
	}{
		{total: "0", staked: "0"},
		{total: "1000000000000000000000000", staked: "999999999999999999999999"},
		{total: "123456789012345678901234567890", staked: "123456789012345678901234567889"},
		{total: "5000000000000000000000000000", staked: "4123450000000000000000000000"},
	}

	for _, tt := range tests {
		total, err := ParseYocto(tt.total)
		require.NoError(t, err)
		staked, err := ParseYocto(tt.staked)
		require.NoError(t, err)

		diff := new(big.Int).Sub(total, staked)
		assert.Equal(t, FormatDisplay(diff), FormatDisplay(Rewards(total, staked)))
		assert.Equal(t, diff.String(), Rewards(total, staked).String())
	}
}

func TestRewardsNegativeDoesNotPanic(t *testing.T) {
	total := yocto(t, "1")
	staked := yocto(t, "1.5")

	assert.NotPanics(t, func() {
		assert.Equal(t, "-0.50", FormatDisplay(Rewards(total, staked)))
	})
}

func TestValidateStakeAmount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr error
	}{
		{amount: "0.5", wantErr: ErrBelowMinimum},
		{amount: "1"},
		{amount: "", wantErr: ErrAmountRequired},
		{amount: "2.5"},
		{amount: "ten", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ValidateStakeAmount(tt.amount, DefaultMinStake)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, yocto(t, tt.amount), got)
		})
	}
}

func TestValidateUnstakeAmount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr error
	}{
		{amount: "0", wantErr: ErrNonPositiveAmount},
		{amount: "-1", wantErr: ErrNonPositiveAmount},
		{amount: "", wantErr: ErrAmountRequired},
		{amount: "0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ValidateUnstakeAmount(tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "100000000000000000000", got.String())
		})
	}
}

func TestBalanceFieldDisplay(t *testing.T) {
	assert.Equal(t, "--", UnavailableBalance().Display())
	assert.Equal(t, "0", ZeroBalance().Display())
	assert.Equal(t, "--", BalanceField{}.Display())
	assert.Equal(t, "3.00", KnownBalance(yocto(t, "3")).Display())
	assert.True(t, KnownBalance(big.NewInt(0)).Known())
}

func TestStatusMessageExpiry(t *testing.T) {
	posted := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	msg := StatusMessage{Text: "ok", Severity: SeverityInfo, PostedAt: posted}

	assert.False(t, msg.Expired(posted.Add(4*time.Second)))
	assert.True(t, msg.Expired(posted.Add(5*time.Second)))
	assert.True(t, StatusMessage{}.Expired(posted))
}

func TestNewFunctionCallDefaults(t *testing.T) {
	call, err := NewFunctionCall(MethodWithdrawAll, nil, DefaultGas, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(call.Args))
	assert.Equal(t, int64(0), call.Deposit.Int64())
	assert.Equal(t, uint64(50_000_000_000_000), call.Gas)
}

func TestNetworkDefaults(t *testing.T) {
	assert.NoError(t, NetworkMainnet.Validate())
	assert.ErrorContains(t, Network("betanet").Validate(), "unsupported network")
	assert.Equal(t, "https://rpc.testnet.near.org", NetworkTestnet.DefaultRPCURL())
	assert.Equal(t, "https://app.mynearwallet.com", NetworkMainnet.DefaultWalletURL())
}
