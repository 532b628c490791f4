package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 7, cfg.Forecast.Days)
	require.Equal(t, BackendMemory, cfg.Preferences.Backend)
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
forecast:
  days: 5
  cache:
    backend: valkey
    addr: localhost:6379
    ttl: 30m
preferences:
  backend: sqlite
  sqlitePath: /tmp/prefs.db
metrics:
  histogramBuckets: [0.1, 0.5, 2]
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FORECAST_CACHE_TTL", "5m")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Forecast.Days)
	require.Equal(t, BackendValkey, cfg.Forecast.Cache.Backend)
	require.Equal(t, 5*time.Minute, cfg.Forecast.Cache.TTL)
	require.Equal(t, BackendSQLite, cfg.Preferences.Backend)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.Metrics.Enabled)
	require.Equal(t, []float64{0.1, 0.5, 2}, cfg.Metrics.HistogramBuckets)
}

func TestValidateRejectsIncompleteBackends(t *testing.T) {
	cfg := defaultConfig()
	cfg.Forecast.Cache.Backend = BackendValkey
	require.ErrorContains(t, cfg.Validate(), "forecast.cache.addr")

	cfg = defaultConfig()
	cfg.Preferences.Backend = BackendPostgres
	require.ErrorContains(t, cfg.Validate(), "preferences.postgres.dsn")

	cfg = defaultConfig()
	cfg.Preferences.Backend = "redis"
	require.ErrorContains(t, cfg.Validate(), "not supported")

	cfg = defaultConfig()
	cfg.Metrics.HistogramBuckets = []float64{0.5, 0.5}
	require.ErrorContains(t, cfg.Validate(), "metrics.histogramBuckets")

	cfg = defaultConfig()
	cfg.Forecast.Archive.Enabled = true
	require.ErrorContains(t, cfg.Validate(), "forecast.archive")
}
