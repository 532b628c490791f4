package forecastcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/forecast"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	fc := forecast.Forecast{Timezone: "Europe/Kyiv", Location: forecast.Location{Lat: 50.45, Lon: 30.52}}

	_, ok, err := cache.Get(ctx, "50.45,30.52")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Set(ctx, "50.45,30.52", fc, time.Minute))
	got, ok, err := cache.Get(ctx, "50.45,30.52")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fc, got)
}

func TestMemoryCacheExpires(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", forecast.Forecast{}, 15*time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", forecast.Forecast{}, 0))

	now = now.Add(16 * time.Minute)
	_, ok, _ := cache.Get(ctx, "k")
	require.False(t, ok)
	_, ok, _ = cache.Get(ctx, "forever")
	require.True(t, ok)
}

func TestValkeyCacheKeys(t *testing.T) {
	require.Equal(t, "forecast:50.45,30.52", NewValkeyCache(nil, "").entryKey("50.45,30.52"))
	require.Equal(t, "rr:1.00,2.00", NewValkeyCache(nil, "rr").entryKey("1.00,2.00"))
}

func TestMemoryCacheExpiryKeepsConcurrentRefresh(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	fresh := forecast.Forecast{Timezone: "Europe/Kyiv"}

	// The refresh lands between the expired read and the eviction.
	armed, refreshed := false, false
	cache.now = func() time.Time {
		if armed && !refreshed {
			refreshed = true
			require.NoError(t, cache.Set(ctx, "k", fresh, time.Hour))
		}
		return now
	}

	require.NoError(t, cache.Set(ctx, "k", forecast.Forecast{Timezone: "stale"}, time.Minute))
	now = now.Add(2 * time.Minute)
	armed = true

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, refreshed)

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fresh, got)
}
