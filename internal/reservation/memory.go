package reservation

import (
	"context"
	"sync"

	"github.com/juju/errors"
)

// Memory is the process-wide in-memory Store. The zero value is not usable,
// call NewMemory.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]Reservation
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]Reservation)}
}

// Get returns a copy of the user's reservations, or an empty slice.
func (m *Memory) Get(_ context.Context, userID string) ([]Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rs := m.data[userID]
	out := make([]Reservation, len(rs))
	copy(out, rs)
	return out, nil
}

// Put replaces the user's reservations. The slice is copied before it becomes
// visible to readers.
func (m *Memory) Put(_ context.Context, userID string, rs []Reservation) error {
	if err := CheckOwner(userID, rs); err != nil {
		return errors.Trace(err)
	}
	cp := make([]Reservation, len(rs))
	copy(cp, rs)

	m.mu.Lock()
	m.data[userID] = cp
	m.mu.Unlock()
	return nil
}
