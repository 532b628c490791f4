package forecast

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/metrics"
)

// Service resolves forecasts through the cache before calling upstream.
type Service interface {
	Get(ctx context.Context, loc Location) (Forecast, error)
}

// Config tunes the forecast service.
type Config struct {
	CacheTTL time.Duration
}

type service struct {
	cfg      Config
	provider Provider
	cache    Cache
	archive  Archive
	metrics  *metrics.Manager
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the forecast domain. archive may be nil.
func NewService(cfg Config, provider Provider, cache Cache, archive Archive, m *metrics.Manager, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		archive:  archive,
		metrics:  m,
		logger:   logger.With("component", "forecast.service"),
		now:      time.Now,
	}
}

func (s *service) Get(ctx context.Context, loc Location) (Forecast, error) {
	if err := loc.Validate(); err != nil {
		return Forecast{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}
	key := loc.Key()

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("forecast cache lookup failed", "key", key, "error", err)
	} else if ok {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	start := s.now()
	fc, err := s.provider.Fetch(ctx, loc)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.metrics.RecordForecastFetch(metrics.OutcomeError, elapsed)
		return Forecast{}, apperrors.Wrap(apperrors.CodeForecastError, "failed to fetch forecast", err)
	}
	s.metrics.RecordForecastFetch(metrics.OutcomeOK, elapsed)
	s.logger.Info("forecast fetched", "key", key, "hours", len(fc.Hours), "days", len(fc.Days), "elapsed_ms", elapsed.Milliseconds())

	if s.archive != nil && len(fc.RawJSON) > 0 {
		if objectKey, err := s.archive.Put(ctx, fc); err != nil {
			s.logger.Warn("forecast archive failed", "key", key, "error", err)
		} else {
			s.logger.Debug("forecast archived", "key", key, "object", objectKey)
		}
	}
	if err := s.cache.Set(ctx, key, fc, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("forecast cache store failed", "key", key, "error", err)
	}
	return fc, nil
}
