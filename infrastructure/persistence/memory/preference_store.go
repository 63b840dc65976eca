package memory

import (
	"context"
	"sync"
)

// PreferenceStore is an in-memory key/value store for user preferences
// such as the theme selection. Values live for the lifetime of the
// process, matching the session-scoped persistence model.
type PreferenceStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewPreferenceStore creates an empty preference store
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		items: make(map[string]string),
	}
}

// Get retrieves a preference value; found is false when absent
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.items[key]
	return value, exists, nil
}

// Set stores a preference value
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// Delete removes a preference value
func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
