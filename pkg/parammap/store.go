package parammap

import (
	"context"
	"sync"
)

// Store is the read boundary to the parameter map catalog. Get returns
// (nil, nil) when no map exists for the plugin: absence is an expected
// outcome the engine handles, not an error. Network-backed implementations
// surface transport failures through the error; retrying is the caller's
// concern.
type Store interface {
	Get(ctx context.Context, pluginID string) (*Map, error)
}

// MemoryStore is an in-memory Store, used for seed data and tests. Maps
// are treated as immutable once upserted; concurrent readers are safe.
type MemoryStore struct {
	mu   sync.RWMutex
	maps map[string]*Map
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{maps: make(map[string]*Map)}
}

// Upsert validates the map and stores it, replacing any previous map for
// the same plugin.
func (s *MemoryStore) Upsert(m *Map) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[m.PluginID] = m
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, pluginID string) (*Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maps[pluginID], nil
}

// Len returns the number of stored maps.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}
