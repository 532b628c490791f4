package location

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/i18n"
	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/metrics"
)

// Service exposes place search and reverse geocoding.
type Service interface {
	Search(ctx context.Context, query string) ([]Result, error)
	Reverse(ctx context.Context, loc forecast.Location, locale i18n.Locale) (Result, error)
}

type service struct {
	geocoder Geocoder
	metrics  *metrics.Manager
	logger   *slog.Logger
}

// NewService wires the location domain.
func NewService(geocoder Geocoder, m *metrics.Manager, logger *slog.Logger) Service {
	return &service{
		geocoder: geocoder,
		metrics:  m,
		logger:   logger.With("component", "location.service"),
	}
}

func (s *service) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}, nil
	}
	places, err := s.geocoder.Search(ctx, query, SearchLimit)
	if err != nil {
		s.metrics.RecordGeocode("search", metrics.OutcomeError)
		return nil, apperrors.Wrap(apperrors.CodeGeocodeError, "location search failed", err)
	}
	s.metrics.RecordGeocode("search", metrics.OutcomeOK)

	if len(places) > SearchLimit {
		places = places[:SearchLimit]
	}
	results := make([]Result, 0, len(places))
	for _, p := range places {
		results = append(results, Result{
			Label:       SearchLabel(p),
			DisplayName: p.DisplayName,
			Lat:         p.Location.Lat,
			Lon:         p.Location.Lon,
		})
	}
	return results, nil
}

// Reverse never fails on upstream errors: the coordinates themselves
// become the label.
func (s *service) Reverse(ctx context.Context, loc forecast.Location, locale i18n.Locale) (Result, error) {
	if err := loc.Validate(); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}
	result := Result{Label: CoordinatesLabel(loc), Lat: loc.Lat, Lon: loc.Lon}

	place, ok, err := s.geocoder.Reverse(ctx, loc)
	if err != nil {
		s.metrics.RecordGeocode("reverse", metrics.OutcomeError)
		s.logger.Warn("reverse geocoding failed", "lat", loc.Lat, "lon", loc.Lon, "error", err)
		return result, nil
	}
	s.metrics.RecordGeocode("reverse", metrics.OutcomeOK)
	if !ok {
		return result, nil
	}
	result.Label = ReverseLabel(place.Address, loc, i18n.Text(locale, i18n.UnknownRegion))
	result.DisplayName = place.DisplayName
	return result, nil
}
