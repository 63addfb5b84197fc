package session

import (
	"sync"

	"github.com/skybank/skybank-core/internal/domain"
)

// Session binds one execution context to at most one active account. Each
// concurrent caller owns its own Session instance; the slot holds a shared
// reference to the account, never a copy, so ledger mutations stay visible
// through it.
type Session struct {
	mu     sync.Mutex
	active *domain.Account
}

func New() *Session {
	return &Session{}
}

// SetActive replaces the active account unconditionally.
func (s *Session) SetActive(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = account
}

// Active returns the current active account, or nil when none is set.
func (s *Session) Active() *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Clear removes the active account. Safe to call when already empty.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}
