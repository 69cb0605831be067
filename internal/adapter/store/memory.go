package store

import (
	"sync"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

// MemoryStore is an in-memory implementation of port.SessionStore. Entries
// live for the lifetime of the process and are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]domain.TokenBundle
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]domain.TokenBundle),
	}
}

// Put stores a token bundle under the given user id, replacing any existing
// entry. Concurrent writes for the same id resolve last-write-wins.
func (s *MemoryStore) Put(userID string, tokens *domain.TokenBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = *tokens
}

// Get returns a copy of the token bundle for the given user id, if present.
func (s *MemoryStore) Get(userID string) (*domain.TokenBundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens, ok := s.tokens[userID]
	if !ok {
		return nil, false
	}
	return &tokens, true
}
