package application

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// AccountListener receives the full account list after every change.
type AccountListener func(ctx context.Context, accounts []domain.AccountID)

type accountSubscription struct {
	id       int
	listener AccountListener
}

// AccountStore is the wallet connector's observable account list. It is the
// only state persisted by the client.
type AccountStore struct {
	repo    ports.SessionRepository
	network domain.Network

	mu          sync.Mutex
	accounts    []domain.AccountID
	subscribers []accountSubscription
	nextID      int
}

func NewAccountStore(repo ports.SessionRepository, network domain.Network) *AccountStore {
	return &AccountStore{repo: repo, network: network}
}

// Load replaces the in-memory list with the persisted one without notifying.
func (s *AccountStore) Load(ctx context.Context) error {
	accounts, err := s.repo.Load(ctx, s.network)
	if err != nil {
		return fmt.Errorf("load %s accounts: %w", s.network, err)
	}

	s.mu.Lock()
	s.accounts = slices.Clone(accounts)
	s.mu.Unlock()

	return nil
}

func (s *AccountStore) Accounts() []domain.AccountID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.accounts)
}

// SetAccounts persists the list and then notifies every subscriber, in
// subscription order, even when the list did not change.
func (s *AccountStore) SetAccounts(ctx context.Context, accounts []domain.AccountID) error {
	next := slices.Clone(accounts)
	if err := s.repo.Save(ctx, s.network, next); err != nil {
		return fmt.Errorf("save %s accounts: %w", s.network, err)
	}

	s.mu.Lock()
	s.accounts = next
	listeners := make([]AccountListener, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		listeners = append(listeners, sub.listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, slices.Clone(next))
	}

	return nil
}

// Subscribe registers listener for future changes. The returned func removes it.
func (s *AccountStore) Subscribe(listener AccountListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, accountSubscription{id: id, listener: listener})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub accountSubscription) bool {
			return sub.id == id
		})
	}
}
