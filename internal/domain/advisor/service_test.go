package advisor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/preferences"
	"github.com/yanqian/runready/internal/domain/running"
	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/logger"
)

var kyivZone = time.FixedZone("Europe/Kyiv", 3*60*60)

type stubForecasts struct {
	forecast forecast.Forecast
	err      error
	calls    int
}

func (s *stubForecasts) Get(_ context.Context, loc forecast.Location) (forecast.Forecast, error) {
	s.calls++
	if s.err != nil {
		return forecast.Forecast{}, s.err
	}
	fc := s.forecast
	fc.Location = loc
	return fc, nil
}

type stubRenderer struct {
	data ChartData
}

func (s *stubRenderer) RenderComfort(w io.Writer, data ChartData) error {
	s.data = data
	_, err := io.WriteString(w, "<html>"+data.Title+"</html>")
	return err
}

func twoDayForecast() forecast.Forecast {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, kyivZone)
	hours := make([]running.HourSample, 0, 48)
	for i := 0; i < 48; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		uv := 0.0
		if h := ts.Hour(); h >= 12 && h <= 14 {
			uv = 7
		}
		hours = append(hours, running.HourSample{
			Time:        ts,
			Temperature: 14,
			FeelsLike:   14,
			Humidity:    50,
			UV:          uv,
			Wind:        10,
		})
	}
	return forecast.Forecast{
		Timezone:         "Europe/Kyiv",
		UTCOffsetSeconds: 3 * 60 * 60,
		Hours:            hours,
		Days: []forecast.DaySummary{
			{Date: "2025-06-02", TempMax: 16, TempMin: 8, WindMax: 10, UVMax: 2},
			{Date: "2025-06-03", TempMax: 34, TempMin: 24, WindMax: 30, UVMax: 9, PrecipMax: 80},
		},
		FetchedAt: time.Date(2025, 6, 2, 4, 50, 0, 0, time.UTC),
	}
}

func newTestService(fc *stubForecasts, renderer ChartRenderer, maxTiles int) *service {
	svc := NewService(Config{MaxTiles: maxTiles}, fc, renderer, logger.Discard()).(*service)
	// 08:00 in Kyiv
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 5, 0, 0, 0, time.UTC) }
	return svc
}

func baseRequest() Request {
	return Request{Location: forecast.Location{Lat: 50.45, Lon: 30.52}, Preferences: preferences.Defaults()}
}

func TestAdviseToday(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 0)

	res, err := svc.Advise(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Equal(t, "2025-06-02", res.Date)
	require.Equal(t, []string{"2025-06-02", "2025-06-03"}, res.AvailableDates)
	require.Equal(t, "08:00", res.Current.Label)
	require.Equal(t, "short-sleeve tee", res.Outfit.Top)
	require.Equal(t, "shorts or capris", res.Outfit.Bottom)
	require.Empty(t, res.Outfit.Extras)
	require.Equal(t, 15, res.SPF.SPF)
	require.Equal(t, 450, res.Water.TotalML)
	require.Equal(t, []string{"08:00", "09:00", "10:00"}, []string{res.BestSlots[0].Label, res.BestSlots[1].Label, res.BestSlots[2].Label})
	require.Equal(t, "Today ~14°C. Wear short-sleeve tee, shorts or capris; SPF 15. Take 450 ml of water. Best time: 08:00 or 09:00.", res.Summary)
	require.Empty(t, res.Warnings)
	require.Equal(t, "Feels like 14°C: practically the same as the actual temperature.", res.Interpretations.FeelsLike)
	require.Equal(t, "Excellent", res.ComfortLevel)
	require.Equal(t, &UVPeak{Max: 7, Label: "12:00", Category: "high"}, res.UVPeak)
	require.Len(t, res.Hours, 16)
	require.Equal(t, "2025-06-02T04:50:00Z", res.FetchedAt)
}

func TestAdviseSelectedHourAndLocale(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 4)
	req := baseRequest()
	hour := 12
	req.Hour = &hour
	req.Preferences.Language = i18n.UA

	res, err := svc.Advise(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "12:00", res.Current.Label)
	require.Equal(t, 30, res.SPF.SPF)
	require.Len(t, res.Hours, 4)
	require.True(t, strings.HasPrefix(res.Summary, "Сьогодні ~14°C."))
	require.Contains(t, res.Outfit.Headwear, i18n.Text(i18n.UA, i18n.HeadBrimmedCap))
}

func TestAdviseRejectsUnavailableHour(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 0)
	req := baseRequest()
	past := 3
	req.Hour = &past

	_, err := svc.Advise(context.Background(), req)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestAdviseOtherDayKeepsAllHours(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 24)
	req := baseRequest()
	req.Date = "2025-06-03"

	res, err := svc.Advise(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "00:00", res.Current.Label)
	require.Len(t, res.Hours, 24)
}

func TestAdviseEmptyDay(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 0)
	req := baseRequest()
	req.Date = "2025-06-09"

	res, err := svc.Advise(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, res.Current)
	require.Empty(t, res.BestSlots)
	require.NotNil(t, res.Hours)
}

func TestAdviseInvalidDate(t *testing.T) {
	stub := &stubForecasts{forecast: twoDayForecast()}
	svc := newTestService(stub, nil, 0)
	req := baseRequest()
	req.Date = "06/02/2025"

	_, err := svc.Advise(context.Background(), req)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Zero(t, stub.calls)
}

func TestAdvisePropagatesForecastError(t *testing.T) {
	stub := &stubForecasts{err: apperrors.Wrap(apperrors.CodeForecastError, "failed to fetch forecast", errors.New("502"))}
	_, err := newTestService(stub, nil, 0).Advise(context.Background(), baseRequest())
	require.True(t, apperrors.IsCode(err, apperrors.CodeForecastError))
}

func TestWeekly(t *testing.T) {
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, nil, 0)
	req := baseRequest()
	req.Preferences.PreferredTime = running.WindowEvening

	days, err := svc.Weekly(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, "Mon", days[0].Weekday)
	require.Equal(t, 2.0, days[0].Score)
	require.Equal(t, "Excellent", days[0].Comfort)
	require.Equal(t, "19:00", days[0].SuggestedTime)
	require.Equal(t, "Hard", days[1].Comfort)
}

func TestChart(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(&stubForecasts{forecast: twoDayForecast()}, renderer, 0)

	var buf bytes.Buffer
	require.NoError(t, svc.Chart(context.Background(), baseRequest(), &buf))
	require.Equal(t, "<html>Running comfort</html>", buf.String())
	require.Equal(t, "2025-06-02", renderer.data.Subtitle)
	require.Len(t, renderer.data.Labels, 16)
	require.Len(t, renderer.data.Best, 16)

	marked := 0
	for _, v := range renderer.data.Best {
		if v != 0 {
			marked++
		}
	}
	require.Equal(t, 3, marked)
}

func TestChartDisabled(t *testing.T) {
	err := newTestService(&stubForecasts{}, nil, 0).Chart(context.Background(), baseRequest(), io.Discard)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
