package running

import "math"

// comfortOptimum is the air temperature, in °C, that carries no penalty.
const comfortOptimum = 12.0

// ComfortScore returns the discomfort score of one hour; lower is better.
// The total is the unclamped sum of five independent penalties.
func ComfortScore(temperature, humidity, wind, uv, precip float64) float64 {
	tempPenalty := math.Abs(temperature-comfortOptimum) * 1.2
	humidityPenalty := clamp((humidity-50)/5, 0, 6)
	windPenalty := math.Max(0, (wind-12)/5)

	var uvPenalty float64
	switch {
	case uv >= 6:
		uvPenalty = 4
	case uv >= 3:
		uvPenalty = 1.5
	}

	var rainPenalty float64
	switch {
	case precip >= 60:
		rainPenalty = 6
	case precip >= 30:
		rainPenalty = 2.5
	default:
		rainPenalty = 0.2 * (precip / 10)
	}

	return tempPenalty + humidityPenalty + windPenalty + uvPenalty + rainPenalty
}

// ScoreSamples returns copies of samples with Score populated. The input
// slice is left untouched.
func ScoreSamples(samples []HourSample) []HourSample {
	out := make([]HourSample, len(samples))
	for i, s := range samples {
		s.Score = ComfortScore(s.Temperature, s.Humidity, s.Wind, s.UV, s.Precip)
		out[i] = s
	}
	return out
}

// UVCategory buckets a UV index using the WHO exposure categories.
func UVCategory(uv float64) string {
	switch {
	case uv < 3:
		return "low"
	case uv < 6:
		return "moderate"
	case uv < 8:
		return "high"
	case uv < 11:
		return "very_high"
	default:
		return "extreme"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
