package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/running"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultDays    = 7
	hourLayout     = "2006-01-02T15:04"

	hourlyFields = "temperature_2m,apparent_temperature,relative_humidity_2m,precipitation_probability,uv_index,wind_speed_10m"
	dailyFields  = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,uv_index_max,wind_speed_10m_max"
)

// Config holds the client settings.
type Config struct {
	BaseURL string
	Days    int
	Timeout time.Duration
}

// Client fetches hourly and daily forecasts from Open-Meteo.
type Client struct {
	baseURL    string
	days       int
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds an API client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	days := cfg.Days
	if days <= 0 {
		days = defaultDays
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		days:       days,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Fetch retrieves the forecast for a location.
func (c *Client) Fetch(ctx context.Context, loc forecast.Location) (forecast.Forecast, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
	query.Set("hourly", hourlyFields)
	query.Set("daily", dailyFields)
	query.Set("forecast_days", strconv.Itoa(c.days))
	query.Set("timezone", "auto")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return forecast.Forecast{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return forecast.Forecast{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return forecast.Forecast{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return forecast.Forecast{}, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return forecast.Forecast{}, fmt.Errorf("decode forecast response: %w", err)
	}
	if raw.Error {
		return forecast.Forecast{}, fmt.Errorf("forecast api error: %s", raw.Reason)
	}

	fc := normalize(raw)
	fc.Location = loc
	fc.Source = c.baseURL
	fc.FetchedAt = c.now().UTC()
	fc.RawJSON = body
	return fc, nil
}

type apiResponse struct {
	Error            bool        `json:"error"`
	Reason           string      `json:"reason"`
	Timezone         string      `json:"timezone"`
	UTCOffsetSeconds int         `json:"utc_offset_seconds"`
	Hourly           hourlyBlock `json:"hourly"`
	Daily            dailyBlock  `json:"daily"`
}

// Missing values arrive as JSON null and decode to zero.
type hourlyBlock struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	ApparentTemperature      []float64 `json:"apparent_temperature"`
	RelativeHumidity2m       []float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	UVIndex                  []float64 `json:"uv_index"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
}

type dailyBlock struct {
	Time                        []string  `json:"time"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	UVIndexMax                  []float64 `json:"uv_index_max"`
	WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
}

func normalize(raw apiResponse) forecast.Forecast {
	zone := time.FixedZone(raw.Timezone, raw.UTCOffsetSeconds)
	h := raw.Hourly
	n := minLen(len(h.Time), len(h.Temperature2m), len(h.ApparentTemperature), len(h.RelativeHumidity2m),
		len(h.PrecipitationProbability), len(h.UVIndex), len(h.WindSpeed10m))

	hours := make([]running.HourSample, 0, n)
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		ts, err := time.ParseInLocation(hourLayout, h.Time[i], zone)
		if err != nil {
			continue
		}
		if _, ok := seen[ts.Unix()]; ok {
			continue
		}
		seen[ts.Unix()] = struct{}{}
		hours = append(hours, running.HourSample{
			Time:        ts,
			Temperature: h.Temperature2m[i],
			FeelsLike:   h.ApparentTemperature[i],
			Humidity:    h.RelativeHumidity2m[i],
			UV:          h.UVIndex[i],
			Wind:        h.WindSpeed10m[i],
			Precip:      h.PrecipitationProbability[i],
		})
	}

	d := raw.Daily
	m := minLen(len(d.Time), len(d.Temperature2mMax), len(d.Temperature2mMin), len(d.PrecipitationProbabilityMax),
		len(d.UVIndexMax), len(d.WindSpeed10mMax))
	days := make([]forecast.DaySummary, 0, m)
	for i := 0; i < m; i++ {
		days = append(days, forecast.DaySummary{
			Date:      d.Time[i],
			TempMax:   d.Temperature2mMax[i],
			TempMin:   d.Temperature2mMin[i],
			PrecipMax: d.PrecipitationProbabilityMax[i],
			UVMax:     d.UVIndexMax[i],
			WindMax:   d.WindSpeed10mMax[i],
		})
	}

	return forecast.Forecast{
		Timezone:         raw.Timezone,
		UTCOffsetSeconds: raw.UTCOffsetSeconds,
		Hours:            hours,
		Days:             days,
	}
}

func minLen(lengths ...int) int {
	m := lengths[0]
	for _, l := range lengths[1:] {
		if l < m {
			m = l
		}
	}
	return m
}

var _ forecast.Provider = (*Client)(nil)
