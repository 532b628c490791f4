package advisor

import (
	"math"
	"strings"
	"time"

	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/running"
	"github.com/yanqian/runready/pkg/util"
)

func toHourView(h running.HourSample) HourView {
	return HourView{
		Time:        h.Time.Format(time.RFC3339),
		Label:       util.ClockLabel(h.Time),
		Temperature: round1(h.Temperature),
		FeelsLike:   round1(h.FeelsLike),
		Humidity:    round1(h.Humidity),
		UV:          round1(h.UV),
		UVCategory:  running.UVCategory(h.UV),
		Wind:        round1(h.Wind),
		Precip:      round1(h.Precip),
		Score:       round1(h.Score),
	}
}

func toHourViews(hours []running.HourSample, limit int) []HourView {
	if len(hours) > limit {
		hours = hours[:limit]
	}
	out := make([]HourView, 0, len(hours))
	for _, h := range hours {
		out = append(out, toHourView(h))
	}
	return out
}

func toSlotViews(best []running.HourSample) []SlotView {
	out := make([]SlotView, 0, len(best))
	for _, b := range best {
		out = append(out, SlotView{
			Time:  b.Time.Format(time.RFC3339),
			Label: util.ClockLabel(b.Time),
			Score: round1(b.Score),
		})
	}
	return out
}

func localizeOutfit(locale i18n.Locale, o running.Outfit) *OutfitView {
	return &OutfitView{
		Top:         i18n.Text(locale, o.Top),
		Bottom:      i18n.Text(locale, o.Bottom),
		Headwear:    i18n.TextList(locale, o.Headwear),
		Footwear:    i18n.TextList(locale, o.Footwear),
		Accessories: i18n.TextList(locale, o.Accessories),
		Extras:      i18n.TextList(locale, o.Extras),
	}
}

func localizeWater(locale i18n.Locale, w running.WaterPlan) *WaterView {
	return &WaterView{
		TotalML:      w.TotalML,
		Electrolytes: w.Electrolytes,
		BeforeML:     w.BeforeML,
		DuringML:     w.DuringML,
		AfterML:      w.AfterML,
		Pacing:       i18n.Text(locale, w.Pacing),
	}
}

func interpret(locale i18n.Locale, h running.HourSample) *Interpretations {
	feelsID, feels := running.FeelsLikeLevel(h.Temperature, h.FeelsLike)
	return &Interpretations{
		Wind:      i18n.Text(locale, running.WindLevel(h.Wind)),
		Humidity:  i18n.Text(locale, running.HumidityLevel(h.Humidity, h.Temperature)),
		FeelsLike: i18n.Format(locale, feelsID, feels),
	}
}

// quickSummary renders the one-sentence advice; at most two best hours are
// named.
func quickSummary(locale i18n.Locale, current running.HourSample, outfit *OutfitView, spf running.SPFPlan, water running.WaterPlan, best []running.HourSample) string {
	extras := ""
	if len(outfit.Extras) > 0 {
		extras = ", " + strings.Join(outfit.Extras, ", ")
	}
	labels := make([]string, 0, 2)
	for i := 0; i < len(best) && i < 2; i++ {
		labels = append(labels, util.ClockLabel(best[i].Time))
	}
	bestText := strings.Join(labels, i18n.Text(locale, i18n.Or))
	if bestText == "" {
		bestText = i18n.Text(locale, i18n.NoBestTime)
	}
	return i18n.Format(locale, i18n.QuickAdvice,
		running.RoundHalfUp(current.Temperature),
		outfit.Top,
		outfit.Bottom,
		extras,
		spf.SPF,
		water.TotalML,
		bestText,
	)
}

// uvPeak picks the highest UV hour; ties go to the earliest hour.
func uvPeak(hours []running.HourSample) *UVPeak {
	if len(hours) == 0 {
		return nil
	}
	maxVal := -1.0
	var peak time.Time
	for _, h := range hours {
		if h.UV > maxVal || (h.UV == maxVal && h.Time.Before(peak)) {
			maxVal = h.UV
			peak = h.Time
		}
	}
	return &UVPeak{
		Max:      round1(maxVal),
		Label:    util.ClockLabel(peak),
		Category: running.UVCategory(maxVal),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
