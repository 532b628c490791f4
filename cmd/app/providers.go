package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/runready/internal/domain/advisor"
	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/preferences"
	"github.com/yanqian/runready/internal/infra/archive"
	"github.com/yanqian/runready/internal/infra/config"
	"github.com/yanqian/runready/internal/infra/forecastcache"
	"github.com/yanqian/runready/internal/infra/geo/nominatim"
	"github.com/yanqian/runready/internal/infra/prefstore"
	"github.com/yanqian/runready/internal/infra/weather/openmeteo"
	"github.com/yanqian/runready/pkg/metrics"
)

func provideMetrics(cfg *config.Config) *metrics.Manager {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewManager(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithHistogramBuckets(cfg.Metrics.HistogramBuckets),
	)
}

func provideForecastConfig(cfg *config.Config) forecast.Config {
	return forecast.Config{CacheTTL: cfg.Forecast.Cache.TTL}
}

func provideForecastClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(openmeteo.Config{
		BaseURL: cfg.Forecast.BaseURL,
		Days:    cfg.Forecast.Days,
		Timeout: cfg.Forecast.Timeout,
	})
}

func provideForecastCache(cfg *config.Config, logger *slog.Logger) forecast.Cache {
	if cfg.Forecast.Cache.Backend != config.BackendValkey {
		return forecastcache.NewMemoryCache()
	}
	opt, err := buildValkeyOptions(cfg.Forecast.Cache.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return forecastcache.NewMemoryCache()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return forecastcache.NewMemoryCache()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return forecastcache.NewMemoryCache()
	}
	logger.Info("forecast valkey cache enabled", "addr", cfg.Forecast.Cache.Addr)
	return forecastcache.NewValkeyCache(client, cfg.Forecast.Cache.Prefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideForecastArchive(cfg *config.Config, logger *slog.Logger) forecast.Archive {
	ac := cfg.Forecast.Archive
	if !ac.Enabled {
		return nil
	}
	store, err := archive.NewObjectArchive(archive.ObjectConfig{
		Endpoint:  ac.Endpoint,
		AccessKey: ac.AccessKey,
		SecretKey: ac.SecretKey,
		Bucket:    ac.Bucket,
		Region:    ac.Region,
		Prefix:    ac.Prefix,
		UseSSL:    ac.UseSSL,
	}, logger)
	if err != nil {
		logger.Error("failed to init object archive, keeping raw forecasts in memory", "error", err)
		return archive.NewMemoryArchive(ac.Prefix)
	}
	logger.Info("forecast archive enabled", "bucket", ac.Bucket)
	return store
}

func provideGeocoder(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(nominatim.Config{
		BaseURL:   cfg.Geocoding.BaseURL,
		UserAgent: cfg.Geocoding.UserAgent,
		Language:  cfg.Geocoding.Language,
		Timeout:   cfg.Geocoding.Timeout,
	})
}

func providePreferenceStore(cfg *config.Config, logger *slog.Logger) preferences.Store {
	fallback := prefstore.NewMemoryStore()
	switch cfg.Preferences.Backend {
	case config.BackendSQLite:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := prefstore.OpenSQLite(ctx, cfg.Preferences.SQLitePath)
		if err != nil {
			logger.Error("failed to open sqlite, using memory store", "path", cfg.Preferences.SQLitePath, "error", err)
			return fallback
		}
		logger.Info("preferences sqlite store enabled", "path", cfg.Preferences.SQLitePath)
		return store
	case config.BackendPostgres:
		return providePostgresPreferenceStore(cfg.Preferences.Postgres, logger, fallback)
	default:
		return fallback
	}
}

func providePostgresPreferenceStore(pc config.PostgresConfig, logger *slog.Logger, fallback preferences.Store) preferences.Store {
	dsn := strings.TrimSpace(pc.DSN)
	if dsn == "" {
		logger.Info("preferences postgres dsn not set, using memory store")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory store", "error", err)
		return fallback
	}
	if pc.MaxConns > 0 {
		poolConfig.MaxConns = pc.MaxConns
	}
	if pc.MinConns > 0 {
		poolConfig.MinConns = pc.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory store", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory store", "error", err)
		pool.Close()
		return fallback
	}
	store := prefstore.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("failed to create preferences table, using memory store", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("preferences postgres store enabled")
	return store
}

func provideAdvisorConfig(cfg *config.Config) advisor.Config {
	return advisor.Config{MaxTiles: cfg.Advisor.MaxTiles}
}

func provideDefaultLocation(cfg *config.Config) forecast.Location {
	return forecast.Location{Lat: cfg.Advisor.DefaultLat, Lon: cfg.Advisor.DefaultLon}
}
