// Package running contains the pure scoring and advice functions: comfort
// score, outfit, sun protection, hydration and best-hour ranking. Nothing in
// this package performs I/O; all string output is expressed as i18n message
// ids.
package running

import (
	"strings"
	"time"
)

// HourSample is one forecast hour for a location. Time is expressed in the
// forecast location's zone so Time.Hour() is the local hour of day.
type HourSample struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	Humidity    float64   `json:"humidity"`
	UV          float64   `json:"uv"`
	Wind        float64   `json:"wind"`
	Precip      float64   `json:"precip"`
	Score       float64   `json:"score"`
}

// Gender only selects phrasing.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// Intensity is the planned workout effort.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// HeatPreference shifts the effective temperature for runners who feel
// warmer or colder than average.
type HeatPreference string

const (
	HeatNeutral  HeatPreference = "neutral"
	HeatRunsHot  HeatPreference = "runs_hot"
	HeatRunsCold HeatPreference = "runs_cold"
)

// TimeWindow is a preferred hour-of-day band.
type TimeWindow string

const (
	WindowAny     TimeWindow = "any"
	WindowMorning TimeWindow = "morning"
	WindowDay     TimeWindow = "day"
	WindowEvening TimeWindow = "evening"
)

// Bounds returns the inclusive hour range of the window. ok is false for
// WindowAny and unknown values.
func (w TimeWindow) Bounds() (from, to int, ok bool) {
	switch w {
	case WindowMorning:
		return 6, 10, true
	case WindowDay:
		return 10, 18, true
	case WindowEvening:
		return 18, 22, true
	default:
		return 0, 0, false
	}
}

// Contains reports whether hour falls inside a concrete window.
func (w TimeWindow) Contains(hour int) bool {
	from, to, ok := w.Bounds()
	return ok && hour >= from && hour <= to
}

// ParseGender accepts the canonical values plus the legacy
// "prefer_not_to_say" spelling.
func ParseGender(raw string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(GenderMale):
		return GenderMale, true
	case string(GenderFemale):
		return GenderFemale, true
	case string(GenderUnspecified), "prefer_not_to_say", "":
		return GenderUnspecified, true
	default:
		return "", false
	}
}

// ParseIntensity validates an intensity value.
func ParseIntensity(raw string) (Intensity, bool) {
	switch v := Intensity(strings.ToLower(strings.TrimSpace(raw))); v {
	case IntensityLight, IntensityModerate, IntensityIntense:
		return v, true
	default:
		return "", false
	}
}

// ParseTimeWindow validates a preferred window value.
func ParseTimeWindow(raw string) (TimeWindow, bool) {
	switch v := TimeWindow(strings.ToLower(strings.TrimSpace(raw))); v {
	case WindowAny, WindowMorning, WindowDay, WindowEvening:
		return v, true
	default:
		return "", false
	}
}

// ParseHeatPreference validates a heat preference. Blank means neutral.
func ParseHeatPreference(raw string) (HeatPreference, bool) {
	switch v := HeatPreference(strings.ToLower(strings.TrimSpace(raw))); v {
	case "":
		return HeatNeutral, true
	case HeatNeutral, HeatRunsHot, HeatRunsCold:
		return v, true
	default:
		return "", false
	}
}
