// Package session provides the in-memory implementation of the session store.
package session

import (
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/Akashi23/anime-quote/internal/domain/service"
)

// memoryStore keeps all session state in process memory, keyed by an opaque
// identifier. Sessions do not survive a restart; durability would require a
// backing store behind the same interface.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

// NewMemoryStore is the constructor for memoryStore. It returns the
// implementation as a service.SessionStore interface.
func NewMemoryStore() service.SessionStore {
	return &memoryStore{
		sessions: make(map[string]map[string]any),
	}
}

// New creates an empty session under a fresh opaque identifier.
func (s *memoryStore) New() service.Session {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = make(map[string]any)
	s.mu.Unlock()

	return &memorySession{store: s, id: id}
}

// Find returns a handle for an existing session. Destroyed or unknown
// identifiers report false, forcing the caller to start a new session.
func (s *memoryStore) Find(id string) (service.Session, bool) {
	s.mu.RLock()
	_, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return &memorySession{store: s, id: id}, true
}

// memorySession is a per-request handle onto one record in the store. All
// attribute access goes through the store's lock, so a write is atomic from
// the perspective of any concurrent reader.
type memorySession struct {
	store *memoryStore
	id    string
}

func (s *memorySession) ID() string {
	return s.id
}

func (s *memorySession) Get(key string) (any, bool) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	attrs, ok := s.store.sessions[s.id]
	if !ok {
		return nil, false
	}
	value, ok := attrs[key]

	return value, ok
}

func (s *memorySession) Set(key string, value any) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	attrs, ok := s.store.sessions[s.id]
	if !ok {
		// Writing to a destroyed session must not resurrect it.
		return
	}

	// Copy-on-write so readers holding the old map never observe a
	// half-applied update.
	updated := make(map[string]any, len(attrs)+1)
	maps.Copy(updated, attrs)
	updated[key] = value
	s.store.sessions[s.id] = updated
}

// Destroy removes the session's server-side state. Safe to call repeatedly.
func (s *memorySession) Destroy() {
	s.store.mu.Lock()
	delete(s.store.sessions, s.id)
	s.store.mu.Unlock()
}
