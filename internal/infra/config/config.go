package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names shared by the cache and preference store settings.
const (
	BackendMemory   = "memory"
	BackendValkey   = "valkey"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Forecast    ForecastConfig    `yaml:"forecast"`
	Geocoding   GeocodingConfig   `yaml:"geocoding"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Advisor     AdvisorConfig     `yaml:"advisor"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// ForecastConfig controls the upstream forecast client and its cache.
type ForecastConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	Days    int           `yaml:"days"`
	Timeout time.Duration `yaml:"timeout"`
	Cache   CacheConfig   `yaml:"cache"`
	Archive ArchiveConfig `yaml:"archive"`
}

// CacheConfig selects the forecast cache backend.
type CacheConfig struct {
	Backend string        `yaml:"backend"`
	Addr    string        `yaml:"addr"`
	Prefix  string        `yaml:"prefix"`
	TTL     time.Duration `yaml:"ttl"`
}

// ArchiveConfig points at the S3 compatible bucket raw payloads go to.
type ArchiveConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"useSsl"`
}

// GeocodingConfig controls the place search client.
type GeocodingConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	UserAgent string        `yaml:"userAgent"`
	Language  string        `yaml:"language"`
	Timeout   time.Duration `yaml:"timeout"`
}

// PreferencesConfig selects where runner preferences are persisted.
type PreferencesConfig struct {
	Backend    string         `yaml:"backend"`
	SQLitePath string         `yaml:"sqlitePath"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// AdvisorConfig tunes the advice payload.
type AdvisorConfig struct {
	DefaultLat float64 `yaml:"defaultLat"`
	DefaultLon float64 `yaml:"defaultLon"`
	MaxTiles   int     `yaml:"maxTiles"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled          bool      `yaml:"enabled"`
	Namespace        string    `yaml:"namespace"`
	HistogramBuckets []float64 `yaml:"histogramBuckets"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)
	envBool("HTTP_RETRY_ENABLED", &cfg.HTTP.Retry.Enabled)
	envInt("HTTP_RETRY_MAX_ATTEMPTS", &cfg.HTTP.Retry.MaxAttempts)
	envDuration("HTTP_RETRY_BASE_BACKOFF", &cfg.HTTP.Retry.BaseBackoff)

	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		cfg.Forecast.BaseURL = v
	}
	envInt("FORECAST_DAYS", &cfg.Forecast.Days)
	envDuration("FORECAST_TIMEOUT", &cfg.Forecast.Timeout)
	if v := os.Getenv("FORECAST_CACHE_BACKEND"); v != "" {
		cfg.Forecast.Cache.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("FORECAST_CACHE_ADDR"); v != "" {
		cfg.Forecast.Cache.Addr = v
	}
	envDuration("FORECAST_CACHE_TTL", &cfg.Forecast.Cache.TTL)
	envBool("FORECAST_ARCHIVE_ENABLED", &cfg.Forecast.Archive.Enabled)
	if v := os.Getenv("FORECAST_ARCHIVE_ENDPOINT"); v != "" {
		cfg.Forecast.Archive.Endpoint = v
	}
	if v := os.Getenv("FORECAST_ARCHIVE_ACCESS_KEY"); v != "" {
		cfg.Forecast.Archive.AccessKey = v
	}
	if v := os.Getenv("FORECAST_ARCHIVE_SECRET_KEY"); v != "" {
		cfg.Forecast.Archive.SecretKey = v
	}
	if v := os.Getenv("FORECAST_ARCHIVE_BUCKET"); v != "" {
		cfg.Forecast.Archive.Bucket = v
	}
	if v := os.Getenv("FORECAST_ARCHIVE_REGION"); v != "" {
		cfg.Forecast.Archive.Region = v
	}

	if v := os.Getenv("GEOCODING_BASE_URL"); v != "" {
		cfg.Geocoding.BaseURL = v
	}
	if v := os.Getenv("GEOCODING_USER_AGENT"); v != "" {
		cfg.Geocoding.UserAgent = v
	}
	if v := os.Getenv("GEOCODING_LANGUAGE"); v != "" {
		cfg.Geocoding.Language = v
	}

	if v := os.Getenv("PREFERENCES_BACKEND"); v != "" {
		cfg.Preferences.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("PREFERENCES_SQLITE_PATH"); v != "" {
		cfg.Preferences.SQLitePath = v
	}
	if v := os.Getenv("PREFERENCES_POSTGRES_DSN"); v != "" {
		cfg.Preferences.Postgres.DSN = v
	}
	if v := os.Getenv("PREFERENCES_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Preferences.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("PREFERENCES_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Preferences.Postgres.MinConns = int32(parsed)
		}
	}

	envInt("ADVISOR_MAX_TILES", &cfg.Advisor.MaxTiles)
	envBool("METRICS_ENABLED", &cfg.Metrics.Enabled)
	if v := os.Getenv("METRICS_NAMESPACE"); v != "" {
		cfg.Metrics.Namespace = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/metrics",
				},
			},
		},
		Forecast: ForecastConfig{
			BaseURL: "https://api.open-meteo.com/v1/forecast",
			Days:    7,
			Timeout: 10 * time.Second,
			Cache: CacheConfig{
				Backend: BackendMemory,
				Prefix:  "forecast",
				TTL:     15 * time.Minute,
			},
			Archive: ArchiveConfig{
				Enabled: false,
				Prefix:  "forecasts",
				Region:  "auto",
				UseSSL:  true,
			},
		},
		Geocoding: GeocodingConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "runready/1.0",
			Language:  "en",
			Timeout:   10 * time.Second,
		},
		Preferences: PreferencesConfig{
			Backend:    BackendMemory,
			SQLitePath: "data/preferences.db",
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Advisor: AdvisorConfig{
			DefaultLat: 50.4501,
			DefaultLon: 30.5234,
			MaxTiles:   16,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "runready",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if strings.TrimSpace(c.Forecast.BaseURL) == "" {
		return errors.New("forecast.baseUrl cannot be empty")
	}
	if c.Forecast.Days < 1 || c.Forecast.Days > 16 {
		return errors.New("forecast.days must be within [1, 16]")
	}
	if c.Forecast.Cache.TTL < 0 {
		return errors.New("forecast.cache.ttl cannot be negative")
	}
	switch c.Forecast.Cache.Backend {
	case BackendMemory:
	case BackendValkey:
		if strings.TrimSpace(c.Forecast.Cache.Addr) == "" {
			return errors.New("forecast.cache.addr cannot be empty when the valkey cache is selected")
		}
	default:
		return fmt.Errorf("forecast.cache.backend %q is not supported", c.Forecast.Cache.Backend)
	}
	if c.Forecast.Archive.Enabled {
		a := c.Forecast.Archive
		if a.Endpoint == "" || a.AccessKey == "" || a.SecretKey == "" || a.Bucket == "" {
			return errors.New("forecast.archive requires endpoint, accessKey, secretKey and bucket when enabled")
		}
	}
	if strings.TrimSpace(c.Geocoding.BaseURL) == "" {
		return errors.New("geocoding.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Geocoding.UserAgent) == "" {
		return errors.New("geocoding.userAgent cannot be empty")
	}
	switch c.Preferences.Backend {
	case BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(c.Preferences.SQLitePath) == "" {
			return errors.New("preferences.sqlitePath cannot be empty when the sqlite backend is selected")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.Preferences.Postgres.DSN) == "" {
			return errors.New("preferences.postgres.dsn cannot be empty when the postgres backend is selected")
		}
	default:
		return fmt.Errorf("preferences.backend %q is not supported", c.Preferences.Backend)
	}
	if c.Advisor.DefaultLat < -90 || c.Advisor.DefaultLat > 90 || c.Advisor.DefaultLon < -180 || c.Advisor.DefaultLon > 180 {
		return errors.New("advisor default coordinates are out of range")
	}
	if c.Advisor.MaxTiles <= 0 {
		return errors.New("advisor.maxTiles must be positive")
	}
	for i, b := range c.Metrics.HistogramBuckets {
		if b <= 0 || (i > 0 && b <= c.Metrics.HistogramBuckets[i-1]) {
			return errors.New("metrics.histogramBuckets must be positive and strictly increasing")
		}
	}
	return nil
}
