// Package memory provides process-local implementations of the storage ports.
// They back the service when no external database is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// SessionStore keeps durable session records in a map keyed by session id.
type SessionStore struct {
	mu      sync.RWMutex
	records map[string]*domain.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{records: make(map[string]*domain.User)}
}

func (s *SessionStore) Load(_ context.Context, sessionID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[sessionID].Clone(), nil
}

func (s *SessionStore) Save(_ context.Context, sessionID string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = user.Clone()
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}
