package storage

import (
	"sync"

	"github.com/eesaa/retail-suite/internal/application/ports"
)

var _ ports.KV = (*MemoryKV)(nil)

// MemoryKV keeps collections in a map. Used by tests and by deployments
// that run without a store file; everything is lost on exit.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV builds an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Load reads one collection.
func (m *MemoryKV) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save overwrites one collection.
func (m *MemoryKV) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}
