package forecastcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/runready/internal/domain/forecast"
)

// ValkeyCache stores forecasts as JSON strings in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "forecast"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, key string) (forecast.Forecast, bool, error) {
	result := c.client.Do(ctx, c.client.B().Get().Key(c.entryKey(key)).Build())
	payload, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return forecast.Forecast{}, false, nil
		}
		return forecast.Forecast{}, false, err
	}
	var fc forecast.Forecast
	if err := json.Unmarshal([]byte(payload), &fc); err != nil {
		return forecast.Forecast{}, false, err
	}
	return fc, true, nil
}

func (c *ValkeyCache) Set(ctx context.Context, key string, f forecast.Forecast, ttl time.Duration) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) entryKey(key string) string {
	return c.prefix + ":" + key
}

var _ forecast.Cache = (*ValkeyCache)(nil)
