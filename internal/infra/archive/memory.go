package archive

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/runready/internal/domain/forecast"
)

// MemoryArchive keeps payloads in memory. Useful for tests and local dev.
type MemoryArchive struct {
	mu      sync.RWMutex
	prefix  string
	objects map[string][]byte
}

// NewMemoryArchive constructs an empty archive.
func NewMemoryArchive(prefix string) *MemoryArchive {
	return &MemoryArchive{prefix: prefix, objects: make(map[string][]byte)}
}

// Put implements forecast.Archive.
func (a *MemoryArchive) Put(_ context.Context, f forecast.Forecast) (string, error) {
	if len(f.RawJSON) == 0 {
		return "", errors.New("forecast has no raw payload")
	}
	key := objectKey(a.prefix, f, uuid.New())
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[key] = append([]byte(nil), f.RawJSON...)
	return key, nil
}

// Get returns a stored payload.
func (a *MemoryArchive) Get(key string) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	data, ok := a.objects[key]
	return data, ok
}

// Len reports how many payloads are stored.
func (a *MemoryArchive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.objects)
}

var _ forecast.Archive = (*MemoryArchive)(nil)
