package running

import (
	"math"

	"github.com/yanqian/runready/internal/domain/i18n"
)

// WindLevel interprets a wind speed in km/h.
func WindLevel(wind float64) i18n.MessageID {
	switch {
	case wind <= 5:
		return i18n.WindCalm
	case wind <= 15:
		return i18n.WindLight
	case wind <= 25:
		return i18n.WindModerate
	case wind <= 35:
		return i18n.WindStrong
	default:
		return i18n.WindExtreme
	}
}

// HumidityLevel interprets relative humidity. Hot air tightens the
// thresholds and cold air relaxes them.
func HumidityLevel(humidity, temperature float64) i18n.MessageID {
	dry, comfortable, humid, veryHumid := 40.0, 60.0, 75.0, 85.0
	switch {
	case temperature >= 25:
		comfortable, humid, veryHumid = 50, 65, 80
	case temperature <= 10:
		comfortable, humid = 70, 85
	}

	switch {
	case humidity <= 30:
		return i18n.HumidityVeryDry
	case humidity <= dry:
		return i18n.HumidityDry
	case humidity <= comfortable:
		return i18n.HumidityComfortable
	case humidity <= humid:
		return i18n.HumidityHumid
	case humidity <= veryHumid:
		return i18n.HumidityVeryHumid
	default:
		return i18n.HumidityExtreme
	}
}

// FeelsLikeLevel interprets the gap between apparent and air temperature.
// The returned template takes the rounded apparent temperature.
func FeelsLikeLevel(temperature, feelsLike float64) (i18n.MessageID, int) {
	diff := math.Abs(feelsLike - temperature)
	warmer := feelsLike > temperature
	rounded := RoundHalfUp(feelsLike)

	switch {
	case diff <= 2:
		return i18n.FeelsLikeMinimal, rounded
	case diff <= 5:
		if warmer {
			return i18n.FeelsLikeWarmer, rounded
		}
		return i18n.FeelsLikeCooler, rounded
	case diff <= 10:
		if warmer {
			return i18n.FeelsLikeMuchWarmer, rounded
		}
		return i18n.FeelsLikeMuchCooler, rounded
	default:
		if warmer {
			return i18n.FeelsLikeOverheating, rounded
		}
		return i18n.FeelsLikeHypothermia, rounded
	}
}

// SafetyWarnings lists the hazards present in one hour, in a fixed order.
func SafetyWarnings(s HourSample) []i18n.MessageID {
	warnings := make([]i18n.MessageID, 0, 5)
	if s.Temperature >= 30 {
		warnings = append(warnings, i18n.WarnHighTemp)
	}
	if s.Temperature <= 0 {
		warnings = append(warnings, i18n.WarnFreezing)
	}
	if s.Wind >= 25 {
		warnings = append(warnings, i18n.WarnStrongWind)
	}
	if s.Precip >= 70 {
		warnings = append(warnings, i18n.WarnHighRain)
	}
	if s.UV >= 8 {
		warnings = append(warnings, i18n.WarnHighUV)
	}
	return warnings
}

// ComfortLevelFor buckets a comfort score into a four-step label.
func ComfortLevelFor(score float64) i18n.MessageID {
	switch {
	case score < 8:
		return i18n.ComfortExcellent
	case score < 15:
		return i18n.ComfortGood
	case score < 25:
		return i18n.ComfortFair
	default:
		return i18n.ComfortHard
	}
}

// DailyConditions is the per-day aggregate a weekly outlook is built from.
type DailyConditions struct {
	TempMax   float64
	TempMin   float64
	WindMax   float64
	UVMax     float64
	PrecipMax float64
}

// DayOutlook scores a whole day from its aggregates, assuming 60% humidity,
// and suggests a start hour for the preferred window.
func DayOutlook(d DailyConditions, window TimeWindow) (score float64, level i18n.MessageID, startHour int) {
	score = ComfortScore((d.TempMax+d.TempMin)/2, 60, d.WindMax, d.UVMax, d.PrecipMax)
	switch window {
	case WindowDay:
		startHour = 14
	case WindowEvening:
		startHour = 19
	default:
		startHour = 8
	}
	return score, ComfortLevelFor(score), startHour
}

// RoundHalfUp rounds to the nearest integer with halves going up, so -2.5
// becomes -2.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
