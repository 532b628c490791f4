package prefstore

import (
	"context"
	"sync"

	"github.com/yanqian/runready/internal/domain/preferences"
)

// MemoryStore keeps preference documents in process memory for tests/dev.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Load implements preferences.Store.
func (s *MemoryStore) Load(_ context.Context, profile string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[profile]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), doc...), true, nil
}

// Save replaces the document of a profile.
func (s *MemoryStore) Save(_ context.Context, profile string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[profile] = append([]byte(nil), doc...)
	return nil
}

// Delete removes a profile; missing profiles are not an error.
func (s *MemoryStore) Delete(_ context.Context, profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, profile)
	return nil
}

var _ preferences.Store = (*MemoryStore)(nil)
