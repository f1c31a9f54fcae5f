package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/near-pool-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/near-pool-cli/internal/adapters/secrets/pass"
	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// Store tries each backend in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain needs at least one backend")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("secret store backend %d is nil", i)
		}
	}

	return &Store{backends: backends}, nil
}

// NewPassFirstWithFileFallback prefers pass and falls back to a near-cli
// credentials directory.
func NewPassFirstWithFileFallback(passPrefix, credentialsDir string) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(credentialsDir))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldStop(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d put: %w", i, err))
	}

	return errors.Join(errs...)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	notFound := 0
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldStop(err) {
			return "", err
		}
		if errors.Is(err, domain.ErrSecretNotFound) {
			notFound++
		}
		errs = append(errs, fmt.Errorf("backend %d get: %w", i, err))
	}
	if notFound == len(s.backends) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", errors.Join(errs...)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	deleted := false
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if shouldStop(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d delete: %w", i, err))
	}
	if deleted {
		return nil
	}

	return errors.Join(errs...)
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
