package slot

import (
	"context"
	"slices"
	"sync"
)

// Memory is a slot held in process memory. It does not survive restarts.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saved bool
}

// NewMemory returns an empty memory slot.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the last saved value.
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, ErrEmpty
	}
	return slices.Clone(m.data), nil
}

// Save replaces the stored value.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = slices.Clone(data)
	m.saved = true
	return nil
}

func (m *Memory) Close() error { return nil }
