package util

import "time"

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// DateKey returns the calendar date of ts in its own location.
func DateKey(ts time.Time) string {
	return ts.Format(dateLayout)
}

// ClockLabel renders ts as a 24h HH:MM label in its own location.
func ClockLabel(ts time.Time) string {
	return ts.Format(clockLayout)
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
