package nominatim

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
	"github.com/yanqian/runready/internal/domain/location"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Config holds the client settings. Nominatim's usage policy requires an
// identifying User-Agent.
type Config struct {
	BaseURL   string
	UserAgent string
	Language  string
	Timeout   time.Duration
}

// Client talks to an OpenStreetMap Nominatim instance.
type Client struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		userAgent:  cfg.UserAgent,
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search resolves a free-text query to places.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]location.Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")
	if c.language != "" {
		params.Set("accept-language", c.language)
	}

	var hits []place
	if err := c.get(ctx, "/search", params, &hits); err != nil {
		return nil, err
	}
	out := make([]location.Place, 0, len(hits))
	for _, h := range hits {
		p, ok := h.toDomain()
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Reverse resolves coordinates to the nearest addressable place. found is
// false when Nominatim has nothing there, such as open sea.
func (c *Client) Reverse(ctx context.Context, loc forecast.Location) (location.Place, bool, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	params.Set("addressdetails", "1")
	if c.language != "" {
		params.Set("accept-language", c.language)
	}

	var hit place
	if err := c.get(ctx, "/reverse", params, &hit); err != nil {
		return location.Place{}, false, err
	}
	if hit.Error != "" || hit.Address == nil {
		return location.Place{}, false, nil
	}
	p, ok := hit.toDomain()
	if !ok {
		p.Location = loc
	}
	return p, true, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode geocode response: %w", err)
	}
	return nil
}

type place struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Address     *address `json:"address"`
	Error       string   `json:"error"`
}

type address struct {
	City     string `json:"city"`
	Town     string `json:"town"`
	Village  string `json:"village"`
	Suburb   string `json:"suburb"`
	Hamlet   string `json:"hamlet"`
	State    string `json:"state"`
	Province string `json:"province"`
	Region   string `json:"region"`
	Country  string `json:"country"`
}

// toDomain converts a hit; ok is false when the coordinates do not parse.
func (p place) toDomain() (location.Place, bool) {
	out := location.Place{Name: p.Name, DisplayName: p.DisplayName}
	if p.Address != nil {
		out.Address = location.Address{
			City:     p.Address.City,
			Town:     p.Address.Town,
			Village:  p.Address.Village,
			Suburb:   p.Address.Suburb,
			Hamlet:   p.Address.Hamlet,
			State:    p.Address.State,
			Province: p.Address.Province,
			Region:   p.Address.Region,
			Country:  p.Address.Country,
		}
	}
	lat, latErr := strconv.ParseFloat(p.Lat, 64)
	lon, lonErr := strconv.ParseFloat(p.Lon, 64)
	if latErr != nil || lonErr != nil {
		return out, false
	}
	out.Location = forecast.Location{Lat: lat, Lon: lon}
	return out, true
}

var _ location.Geocoder = (*Client)(nil)
