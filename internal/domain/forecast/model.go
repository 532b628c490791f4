package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/yanqian/runready/internal/domain/running"
	"github.com/yanqian/runready/pkg/util"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Key identifies the location at roughly kilometre precision for caching.
func (l Location) Key() string {
	return fmt.Sprintf("%.2f,%.2f", l.Lat, l.Lon)
}

// Validate checks the coordinate ranges.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || l.Lat < -90 || l.Lat > 90 {
		return errors.New("latitude must be within [-90, 90]")
	}
	if math.IsNaN(l.Lon) || l.Lon < -180 || l.Lon > 180 {
		return errors.New("longitude must be within [-180, 180]")
	}
	return nil
}

// DaySummary holds the daily aggregates used by the weekly outlook.
type DaySummary struct {
	Date      string  `json:"date"`
	TempMax   float64 `json:"tempMax"`
	TempMin   float64 `json:"tempMin"`
	PrecipMax float64 `json:"precipMax"`
	UVMax     float64 `json:"uvMax"`
	WindMax   float64 `json:"windMax"`
}

// Conditions converts the summary to the scorer input.
func (d DaySummary) Conditions() running.DailyConditions {
	return running.DailyConditions{
		TempMax:   d.TempMax,
		TempMin:   d.TempMin,
		WindMax:   d.WindMax,
		UVMax:     d.UVMax,
		PrecipMax: d.PrecipMax,
	}
}

// Forecast is the normalized upstream response. Hour timestamps carry the
// location's UTC offset.
type Forecast struct {
	Location         Location             `json:"location"`
	Timezone         string               `json:"timezone"`
	UTCOffsetSeconds int                  `json:"utcOffsetSeconds"`
	Hours            []running.HourSample `json:"hours"`
	Days             []DaySummary         `json:"days"`
	Source           string               `json:"source"`
	FetchedAt        time.Time            `json:"fetchedAt"`
	RawJSON          []byte               `json:"-"`
}

// Zone returns the fixed zone of the forecast location.
func (f Forecast) Zone() *time.Location {
	return time.FixedZone(f.Timezone, f.UTCOffsetSeconds)
}

// Dates lists the distinct local dates of the hourly series in order.
func (f Forecast) Dates() []string {
	dates := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, h := range f.Hours {
		key := util.DateKey(h.Time)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, key)
	}
	return dates
}

// HoursOn returns the hours of one local date. When now falls on that
// date, hours that started before now are dropped, so at 12:30 the first
// hour kept is 13:00.
func (f Forecast) HoursOn(date string, now time.Time) []running.HourSample {
	today := util.DateKey(now.In(f.Zone()))
	out := make([]running.HourSample, 0, 24)
	for _, h := range f.Hours {
		if util.DateKey(h.Time) != date {
			continue
		}
		if date == today && h.Time.Before(now) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Provider fetches a fresh forecast from upstream.
type Provider interface {
	Fetch(ctx context.Context, loc Location) (Forecast, error)
}

// Cache keeps recent forecasts by location key.
type Cache interface {
	Get(ctx context.Context, key string) (Forecast, bool, error)
	Set(ctx context.Context, key string, f Forecast, ttl time.Duration) error
}

// Archive keeps raw upstream payloads for later inspection.
type Archive interface {
	Put(ctx context.Context, f Forecast) (string, error)
}
