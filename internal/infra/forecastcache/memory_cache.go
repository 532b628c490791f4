package forecastcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/runready/internal/domain/forecast"
)

type entry struct {
	payload   forecast.Forecast
	expiresAt time.Time
}

// MemoryCache keeps forecasts in process memory for tests/dev and as the
// fallback when Valkey is unreachable.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryCache constructs an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements forecast.Cache.
func (c *MemoryCache) Get(_ context.Context, key string) (forecast.Forecast, bool, error) {
	c.mu.RLock()
	record, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return forecast.Forecast{}, false, nil
	}
	if c.hasExpired(record.expiresAt) {
		c.mu.Lock()
		// a concurrent Set may have replaced the entry since the read
		if current, ok := c.entries[key]; ok && c.hasExpired(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return forecast.Forecast{}, false, nil
	}
	return record.payload, true, nil
}

// Set stores the forecast; a non-positive ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key string, f forecast.Forecast, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.entries[key] = entry{payload: f, expiresAt: exp}
	return nil
}

func (c *MemoryCache) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(c.now())
}

var _ forecast.Cache = (*MemoryCache)(nil)
