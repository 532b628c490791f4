package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/running"
	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/logger"
	"github.com/yanqian/runready/pkg/metrics"
)

type stubProvider struct {
	forecast Forecast
	err      error
	calls    int
	last     Location
}

func (s *stubProvider) Fetch(_ context.Context, loc Location) (Forecast, error) {
	s.calls++
	s.last = loc
	if s.err != nil {
		return Forecast{}, s.err
	}
	fc := s.forecast
	fc.Location = loc
	return fc, nil
}

type stubCache struct {
	items  map[string]Forecast
	ttl    time.Duration
	getErr error
}

func (s *stubCache) Get(_ context.Context, key string) (Forecast, bool, error) {
	if s.getErr != nil {
		return Forecast{}, false, s.getErr
	}
	fc, ok := s.items[key]
	return fc, ok, nil
}

func (s *stubCache) Set(_ context.Context, key string, f Forecast, ttl time.Duration) error {
	if s.items == nil {
		s.items = make(map[string]Forecast)
	}
	s.items[key] = f
	s.ttl = ttl
	return nil
}

type stubArchive struct {
	puts int
	err  error
}

func (s *stubArchive) Put(context.Context, Forecast) (string, error) {
	s.puts++
	return "forecasts/x.json", s.err
}

func newTestService(p Provider, c Cache, a Archive, m *metrics.Manager) *service {
	return NewService(Config{CacheTTL: 15 * time.Minute}, p, c, a, m, logger.Discard()).(*service)
}

func TestGetCachesUpstreamResult(t *testing.T) {
	provider := &stubProvider{forecast: Forecast{
		Hours:   []running.HourSample{{Time: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), Temperature: 14}},
		RawJSON: []byte(`{}`),
	}}
	cache := &stubCache{}
	archive := &stubArchive{}
	m := metrics.NewManager()
	svc := newTestService(provider, cache, archive, m)
	loc := Location{Lat: 50.4501, Lon: 30.5234}

	first, err := svc.Get(context.Background(), loc)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), loc)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, 1, archive.puts)
	require.Contains(t, cache.items, "50.45,30.52")
	require.Equal(t, 15*time.Minute, cache.ttl)
	series, err := testutil.GatherAndCount(m.Registry(), "runready_forecast_fetches_total")
	require.NoError(t, err)
	require.Equal(t, 1, series)
}

func TestGetRejectsInvalidCoordinates(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider, &stubCache{}, nil, nil)

	_, err := svc.Get(context.Background(), Location{Lat: 91, Lon: 0})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Zero(t, provider.calls)
}

func TestGetWrapsUpstreamFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("503")}
	cache := &stubCache{}
	svc := newTestService(provider, cache, nil, nil)

	_, err := svc.Get(context.Background(), Location{Lat: 1, Lon: 2})
	require.True(t, apperrors.IsCode(err, apperrors.CodeForecastError))
	require.Empty(t, cache.items)
}

func TestGetSurvivesCacheAndArchiveFailures(t *testing.T) {
	provider := &stubProvider{forecast: Forecast{RawJSON: []byte(`{}`)}}
	cache := &stubCache{getErr: errors.New("valkey down")}
	svc := newTestService(provider, cache, &stubArchive{err: errors.New("bucket missing")}, nil)

	_, err := svc.Get(context.Background(), Location{Lat: 1, Lon: 2})
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
}
