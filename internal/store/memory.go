// internal/store/memory.go
//
// In-memory implementation of the round-session Store interface.
// This is a lightweight persistence layer for active Evil Hangman
// rounds; durable history lives in SQLite.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
)

// Session is one active round: the engine instance plus the metadata the
// HTTP layer needs. The engine is single-threaded, so handlers must hold
// Mu while touching Manager or the outcome fields.
type Session struct {
	Mu sync.Mutex

	ID         string
	Manager    *hangman.Manager
	WordLength int
	Difficulty hangman.Difficulty
	CreatedAt  time.Time

	Finished bool
	Won      bool
	Word     string // revealed secret once the round is finished
}

// Store defines the persistence interface for round sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns an error if the session is not found.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("not found")
}
