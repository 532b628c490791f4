package running

import "github.com/yanqian/runready/internal/domain/i18n"

// SPFPlan is the sunscreen recommendation for one UV reading.
type SPFPlan struct {
	SPF  int            `json:"spf"`
	Note i18n.MessageID `json:"note"`
}

// SPFAdvice maps a UV index to one of three SPF tiers.
func SPFAdvice(uv float64) SPFPlan {
	switch {
	case uv >= 8:
		return SPFPlan{SPF: 50, Note: i18n.SPFHigh}
	case uv >= 3:
		return SPFPlan{SPF: 30, Note: i18n.SPFModerate}
	default:
		return SPFPlan{SPF: 15, Note: i18n.SPFLow}
	}
}

// WaterPlan is the hydration recommendation for one workout.
type WaterPlan struct {
	TotalML      int            `json:"totalMl"`
	Electrolytes bool           `json:"electrolytes"`
	BeforeML     int            `json:"beforeMl"`
	DuringML     int            `json:"duringMl"`
	AfterML      int            `json:"afterMl"`
	Pacing       i18n.MessageID `json:"pacing"`
}

// WaterAdvice sizes the water volume for a workout of durationMin minutes.
// The per-30-minute rate is escalated by heat and humidity, scaled by
// intensity, and the total is rounded up to the next 50 ml. All arithmetic
// is done on integer millilitres so tier boundaries are exact.
func WaterAdvice(durationMin int, temperature, humidity float64, intensity Intensity) WaterPlan {
	per30 := 300
	if temperature >= 20 || humidity >= 70 {
		per30 = 450
	}
	if temperature >= 26 || humidity >= 85 {
		per30 = 600
	}
	if temperature >= 30 {
		per30 = 750
	}

	switch intensity {
	case IntensityLight:
		per30 = per30 * 80 / 100
	case IntensityIntense:
		per30 = per30 * 130 / 100
	}

	total := ceilDiv(durationMin*per30, 30*50) * 50

	return WaterPlan{
		TotalML:      total,
		Electrolytes: temperature >= 24 || humidity >= 80 || intensity == IntensityIntense || durationMin >= 90,
		BeforeML:     percentOf(total, 20),
		DuringML:     percentOf(total, 60),
		AfterML:      percentOf(total, 20),
		Pacing:       pacingFor(intensity, durationMin, temperature),
	}
}

func pacingFor(intensity Intensity, durationMin int, temperature float64) i18n.MessageID {
	switch {
	case intensity == IntensityIntense || durationMin >= 90 || temperature >= 30:
		return i18n.PacingFrequentSips
	case intensity == IntensityModerate || durationMin >= 45:
		return i18n.PacingRegular
	default:
		return i18n.PacingBeforeAfter
	}
}

// ceilDiv rounds a/b towards positive infinity for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// percentOf returns pct% of v rounded half up.
func percentOf(v, pct int) int {
	scaled := v * pct
	q := scaled / 100
	if r := scaled % 100; r >= 50 {
		q++
	} else if r <= -50 {
		q--
	}
	return q
}
