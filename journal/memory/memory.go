// Package memory provides an in-process journal backend holding a bounded
// ring of the most recent entries.
package memory

import (
	"context"
	"sync"

	"github.com/ajiwo/crptgate/journal"
)

// DefaultCapacity bounds the ring when no capacity is configured.
const DefaultCapacity = 1024

// Config configures the memory backend.
type Config struct {
	// Capacity is the maximum number of retained entries. Zero selects
	// DefaultCapacity.
	Capacity int
}

// Backend keeps the most recent entries in memory, evicting oldest first.
type Backend struct {
	mu       sync.Mutex
	capacity int
	entries  []journal.Entry
}

// New creates a memory journal backend.
func New(cfg Config) (*Backend, error) {
	if cfg.Capacity < 0 {
		return nil, NewInvalidCapacityError(cfg.Capacity)
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &Backend{capacity: cfg.Capacity}, nil
}

func (m *Backend) Record(ctx context.Context, entry journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	if len(m.entries) > m.capacity {
		m.entries = append(m.entries[:0], m.entries[len(m.entries)-m.capacity:]...)
	}
	return nil
}

// Entries returns a copy of the retained entries, oldest first.
func (m *Backend) Entries() []journal.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]journal.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Backend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	return nil
}
