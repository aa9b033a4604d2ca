// Package session holds the per-browser session context: at most one
// authenticated user, mirrored into a durable record store.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// StorageKey prefixes every durable session record.
const StorageKey = "mit-user"

// Store persists the durable copy of a session's user record.
// Load returns (nil, nil) when no record exists.
type Store interface {
	Load(ctx context.Context, sessionID string) (*domain.User, error)
	Save(ctx context.Context, sessionID string, user *domain.User) error
	Delete(ctx context.Context, sessionID string) error
}

// Session is the context object passed to every identity operation and view.
// Sessions opened for the same id share one write lock through their Manager.
type Session struct {
	id    string
	store Store
	locks *keyedMutex
	log   zerolog.Logger

	mu   sync.RWMutex
	user *domain.User
}

// ID returns the opaque session identifier.
func (s *Session) ID() string { return s.id }

// User returns a copy of the current user, or nil when unauthenticated.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// Authenticated reports whether a user is held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Role returns the current role, or "" when unauthenticated.
func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Update reloads the durable record under the per-id write lock, applies fn to
// it and, when fn succeeds, overwrites the durable record and the in-memory
// copy. The in-memory copy only takes fn's result once the durable write
// succeeded.
func (s *Session) Update(ctx context.Context, fn func(current *domain.User) (*domain.User, error)) (*domain.User, error) {
	unlock := s.locks.Lock(s.id)
	defer unlock()

	current := s.reload(ctx)
	next, err := fn(current.Clone())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, s.id, next); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.setUser(next)
	return next.Clone(), nil
}

// Clear drops the user from memory and erases the durable record.
func (s *Session) Clear(ctx context.Context) error {
	unlock := s.locks.Lock(s.id)
	defer unlock()

	s.setUser(nil)
	if err := s.store.Delete(ctx, s.id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// reload refreshes the in-memory user from the store. Callers hold the write lock.
func (s *Session) reload(ctx context.Context) *domain.User {
	user, err := s.store.Load(ctx, s.id)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("discarding unreadable session record")
		user = nil
	}
	s.setUser(user)
	return user
}

func (s *Session) setUser(u *domain.User) {
	s.mu.Lock()
	s.user = u.Clone()
	s.mu.Unlock()
}

// Manager opens sessions against a Store.
type Manager struct {
	store Store
	locks *keyedMutex
	log   zerolog.Logger
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, locks: newKeyedMutex(), log: log}
}

// Open returns the session for id. A previously stored record is trusted as
// authenticated without re-validating its role or email. A record that fails
// to load yields an unauthenticated session.
func (m *Manager) Open(ctx context.Context, id string) *Session {
	s := &Session{id: id, store: m.store, locks: m.locks, log: m.log}

	user, err := m.store.Load(ctx, id)
	if err != nil {
		m.log.Warn().Err(err).Str("session_id", id).Msg("discarding unreadable session record")
		return s
	}
	s.user = user
	return s
}

// keyedMutex hands out one mutex per key. Entries are dropped once no holder
// or waiter is left.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock blocks until key is free and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		if m.refs--; m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
