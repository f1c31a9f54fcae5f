package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/near-pool-cli/internal/domain"
	portmocks "github.com/bnema/near-pool-cli/internal/ports/mocks"
)

const credentialKey = "mainnet/alice.near.json"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsMissingBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore()
	require.Error(t, err)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	require.ErrorContains(t, err, "backend 1 is nil")
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, credentialKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), credentialKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, credentialKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, credentialKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), credentialKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundOnlyWhenEveryBackendMisses(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, credentialKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, credentialKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), credentialKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetJoinsBackendErrors(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, credentialKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, credentialKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), credentialKey)
	assert.ErrorContains(t, err, "backend 0 get: pass failed")
	assert.ErrorContains(t, err, "backend 1 get")
}

func TestStorePutStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, credentialKey, "secret").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, credentialKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), credentialKey, "secret"))
}

func TestStoreDeleteReachesEveryBackend(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, credentialKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, credentialKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), credentialKey))
}

func TestStoreDeleteSucceedsWhenAnyBackendDeletes(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, credentialKey).Return(errors.New("pass unavailable")).Once()
	fallback.EXPECT().Delete(mock.Anything, credentialKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), credentialKey))
}

func TestStoreDoesNotFallBackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, credentialKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), credentialKey)
	require.ErrorIs(t, err, context.Canceled)
}
