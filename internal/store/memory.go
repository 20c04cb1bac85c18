// internal/store/memory.go
//
// In-memory implementation of the run Store interface.
// This is a lightweight persistence layer for solver runs, primarily in
// development/testing, or when durability is not required.
//
// Characteristics:
//   - Stores *Run objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for missing run IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("run not found")

// Run is one completed solve: its inputs and the rendered results.
type Run struct {
	ID        string      `json:"id"`
	SetName   string      `json:"setName,omitempty"` // empty for inline piece lists
	Columns   int         `json:"columns"`
	Rows      int         `json:"rows"`
	Pieces    []string    `json:"pieces"`    // standard faces of the input tiles
	Solutions []string    `json:"solutions"` // rendered complete boards
	Counts    map[int]int `json:"counts"`    // surviving boards per piece count
	CreatedAt time.Time   `json:"createdAt"`
}

// Store defines the persistence interface for solver runs.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a run.
	Save(ctx context.Context, r *Run) error

	// Get retrieves a run by ID.
	// Returns ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*Run, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex    // guards runs map
	runs map[string]*Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*Run)}
}

// Save adds or updates the run in the map.
func (m *memory) Save(ctx context.Context, r *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = r
	return nil
}

// Get looks up a run by ID.
func (m *memory) Get(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}
