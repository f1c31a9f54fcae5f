package application

import (
	"sync"

	"github.com/bnema/near-pool-cli/internal/domain"
)

// SessionReader gives read access to the active session.
type SessionReader interface {
	Session() domain.Session
}

// AppState owns the process-wide session. Only the tracker and the
// controller write to it.
type AppState struct {
	mu      sync.RWMutex
	session domain.Session
}

func NewAppState() *AppState {
	return &AppState{}
}

func (s *AppState) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *AppState) setSession(accountID domain.AccountID) {
	s.mu.Lock()
	s.session = domain.Session{AccountID: accountID}
	s.mu.Unlock()
}

func (s *AppState) clearSession() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()
}
