package openmeteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/forecast"
)

const samplePayload = `{
  "latitude": 50.45,
  "longitude": 30.52,
  "utc_offset_seconds": 10800,
  "timezone": "Europe/Kyiv",
  "hourly": {
    "time": ["2025-06-02T06:00", "2025-06-02T07:00", "bad", "2025-06-02T09:00"],
    "temperature_2m": [11.2, 12.5, 13.0, 15.1],
    "apparent_temperature": [10.1, 11.9, 12.0, 14.8],
    "relative_humidity_2m": [80, 75, 70, 60],
    "precipitation_probability": [0, 5, null, 20],
    "uv_index": [0.1, 0.6, 1.2, 2.4],
    "wind_speed_10m": [7.2, 8.0, 9.1]
  },
  "daily": {
    "time": ["2025-06-02"],
    "temperature_2m_max": [22.4],
    "temperature_2m_min": [10.9],
    "precipitation_probability_max": [35],
    "uv_index_max": [6.1],
    "wind_speed_10m_max": [18.3]
  }
}`

func TestFetchNormalizesResponse(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	client.now = func() time.Time { return time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC) }

	fc, err := client.Fetch(context.Background(), forecast.Location{Lat: 50.4501, Lon: 30.5234})
	require.NoError(t, err)

	require.Equal(t, "50.4501", gotQuery["latitude"][0])
	require.Equal(t, "auto", gotQuery["timezone"][0])
	require.Equal(t, "7", gotQuery["forecast_days"][0])
	require.Contains(t, gotQuery["hourly"][0], "apparent_temperature")

	// wind has three values and the third timestamp is unparsable
	require.Len(t, fc.Hours, 2)
	require.Equal(t, 6, fc.Hours[0].Time.Hour())
	require.Equal(t, "2025-06-02T03:00:00Z", fc.Hours[0].Time.UTC().Format(time.RFC3339))
	require.Equal(t, 12.5, fc.Hours[1].Temperature)
	require.Equal(t, 11.9, fc.Hours[1].FeelsLike)
	require.Equal(t, 5.0, fc.Hours[1].Precip)
	require.Equal(t, 8.0, fc.Hours[1].Wind)

	require.Len(t, fc.Days, 1)
	require.Equal(t, forecast.DaySummary{Date: "2025-06-02", TempMax: 22.4, TempMin: 10.9, PrecipMax: 35, UVMax: 6.1, WindMax: 18.3}, fc.Days[0])
	require.Equal(t, "Europe/Kyiv", fc.Timezone)
	require.Equal(t, 10800, fc.UTCOffsetSeconds)
	require.NotEmpty(t, fc.RawJSON)
	require.Equal(t, time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC), fc.FetchedAt)
}

func TestNormalizeNullsAndMissingDaily(t *testing.T) {
	var raw apiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
	  "timezone": "GMT",
	  "hourly": {
	    "time": ["2025-06-02T08:00"],
	    "temperature_2m": [10],
	    "apparent_temperature": [9],
	    "relative_humidity_2m": [50],
	    "precipitation_probability": [null],
	    "uv_index": [null],
	    "wind_speed_10m": [3]
	  }
	}`), &raw))

	fc := normalize(raw)
	require.Len(t, fc.Hours, 1)
	require.Zero(t, fc.Hours[0].Precip)
	require.Zero(t, fc.Hours[0].UV)
	require.Empty(t, fc.Days)
}

func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).Fetch(context.Background(), forecast.Location{Lat: 1, Lon: 2})
	require.ErrorContains(t, err, "status=400")
	require.ErrorContains(t, err, "Latitude must be in range")
}
