package running

import "sort"

const (
	daylightFrom = 6
	daylightTo   = 20
	maxBestSlots = 3
	windowBonus  = 1.0
)

// BestHourSlots ranks scored samples and returns up to three of them,
// best first. The candidate pool is narrowed by daylight and the
// preferred window, loosened step by step when a narrower pool is empty.
// Hours inside the preferred window get a one-point bonus in whichever
// pool is used, and the returned samples carry the adjusted score.
func BestHourSlots(samples []HourSample, allowDark bool, window TimeWindow) []HourSample {
	if len(samples) == 0 {
		return []HourSample{}
	}

	pool := filterHours(samples, func(h int) bool {
		return (allowDark || isDaylight(h)) && (window == WindowAny || window.Contains(h))
	})
	if len(pool) == 0 {
		pool = filterHours(samples, func(h int) bool {
			return allowDark || isDaylight(h)
		})
	}
	if len(pool) == 0 {
		pool = append([]HourSample(nil), samples...)
	}

	for i := range pool {
		if window.Contains(pool[i].Time.Hour()) {
			pool[i].Score -= windowBonus
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score < pool[j].Score
	})
	if len(pool) > maxBestSlots {
		pool = pool[:maxBestSlots]
	}
	return pool
}

func isDaylight(hour int) bool {
	return hour >= daylightFrom && hour <= daylightTo
}

func filterHours(samples []HourSample, keep func(hour int) bool) []HourSample {
	out := make([]HourSample, 0, len(samples))
	for _, s := range samples {
		if keep(s.Time.Hour()) {
			out = append(out, s)
		}
	}
	return out
}
