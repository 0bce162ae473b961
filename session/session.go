package session

import (
	"sync"
	"time"

	"databrew/models"

	"github.com/google/uuid"
)

// Store manages opaque authentication tokens. The dashboard has a single
// admin account, so a session carries the full user record.
type Store interface {
	Create(user models.User, ttl time.Duration) string
	Get(token string) (models.User, bool)
	Delete(token string)
	IsValid(token string) bool
}

type entry struct {
	user      models.User
	expiresAt time.Time
}

// MemoryStore keeps sessions in an in-process map. Expired entries are
// removed lazily when they are next looked up. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry)}
}

// Create issues a new random token valid for ttl.
func (s *MemoryStore) Create(user models.User, ttl time.Duration) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = entry{user: user, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()

	return token
}

// Get returns the user bound to token, or false if the token is unknown or
// expired.
func (s *MemoryStore) Get(token string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return models.User{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, token)
		return models.User{}, false
	}
	return e.user, true
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// IsValid reports whether token refers to a live session.
func (s *MemoryStore) IsValid(token string) bool {
	_, ok := s.Get(token)
	return ok
}
