package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/i18n"
	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/logger"
)

type stubGeocoder struct {
	places    []Place
	place     Place
	found     bool
	err       error
	lastLimit int
}

func (s *stubGeocoder) Search(_ context.Context, _ string, limit int) ([]Place, error) {
	s.lastLimit = limit
	return s.places, s.err
}

func (s *stubGeocoder) Reverse(context.Context, forecast.Location) (Place, bool, error) {
	return s.place, s.found, s.err
}

func TestSearchBuildsLabels(t *testing.T) {
	geo := &stubGeocoder{places: []Place{
		{Name: "Lviv", DisplayName: "Lviv, Lviv Oblast, Ukraine", Location: forecast.Location{Lat: 49.84, Lon: 24.03},
			Address: Address{City: "Lviv", State: "Lviv Oblast", Country: "Ukraine"}},
		{DisplayName: "Somewhere at sea", Location: forecast.Location{Lat: 1, Lon: 2}},
	}}
	svc := NewService(geo, nil, logger.Discard())

	results, err := svc.Search(context.Background(), " Lviv ")
	require.NoError(t, err)
	require.Equal(t, SearchLimit, geo.lastLimit)
	require.Equal(t, "Lviv, Lviv Oblast, Ukraine", results[0].Label)
	require.Equal(t, "Somewhere at sea", results[1].Label)
}

func TestSearchBlankQuery(t *testing.T) {
	geo := &stubGeocoder{}
	results, err := NewService(geo, nil, logger.Discard()).Search(context.Background(), "  ")
	require.NoError(t, err)
	require.Empty(t, results)
	require.Zero(t, geo.lastLimit)
}

func TestSearchFailure(t *testing.T) {
	_, err := NewService(&stubGeocoder{err: errors.New("timeout")}, nil, logger.Discard()).Search(context.Background(), "Kyiv")
	require.True(t, apperrors.IsCode(err, apperrors.CodeGeocodeError))
}

func TestReverseFallsBackToCoordinates(t *testing.T) {
	loc := forecast.Location{Lat: 50.4501, Lon: 30.5234}
	svc := NewService(&stubGeocoder{err: errors.New("429")}, nil, logger.Discard())

	res, err := svc.Reverse(context.Background(), loc, i18n.EN)
	require.NoError(t, err)
	require.Equal(t, "50.45°, 30.52°", res.Label)
}

func TestReverseLocalizesUnknownRegion(t *testing.T) {
	geo := &stubGeocoder{found: true, place: Place{Address: Address{Country: "Ukraine"}}}
	res, err := NewService(geo, nil, logger.Discard()).Reverse(context.Background(), Default, i18n.EN)
	require.NoError(t, err)
	require.Equal(t, "Unknown, Ukraine", res.Label)
}

func TestReverseLabelRules(t *testing.T) {
	loc := forecast.Location{Lat: -33.8688, Lon: 151.2093}
	require.Equal(t, "Kyiv, Ukraine", ReverseLabel(Address{City: "Kyiv", Country: "Ukraine"}, loc, "Unknown"))
	require.Equal(t, "Bucha, Kyiv Oblast, Ukraine", ReverseLabel(Address{Town: "Bucha", State: "Kyiv Oblast", Country: "Ukraine"}, loc, "Unknown"))
	require.Equal(t, "Crimea, Ukraine", ReverseLabel(Address{Region: "Crimea", Country: "Ukraine"}, loc, "Unknown"))
	require.Equal(t, "-33.87°, 151.21°", ReverseLabel(Address{City: "Nowhere"}, loc, "Unknown"))
}
