// Package i18n holds the closed set of UI locales and message ids together
// with a total catalog for each locale.
package i18n

import (
	"fmt"
	"strings"
	"time"
)

// Locale identifies one of the supported UI languages.
type Locale string

const (
	// EN is English.
	EN Locale = "EN"
	// UA is Ukrainian.
	UA Locale = "UA"
)

// DefaultLocale is used whenever no language preference exists.
const DefaultLocale = EN

// Locales lists every supported locale.
func Locales() []Locale {
	return []Locale{EN, UA}
}

// ParseLocale accepts the canonical codes plus the common ISO aliases.
func ParseLocale(raw string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en", "en-us", "en-gb":
		return EN, true
	case "ua", "uk", "uk-ua":
		return UA, true
	default:
		return "", false
	}
}

// Text resolves id for locale l. Unknown locales resolve through the
// default locale.
func Text(l Locale, id MessageID) string {
	if msg, ok := catalogs[l][id]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][id]; ok {
		return msg
	}
	return string(id)
}

// Format resolves id and applies fmt-style arguments to the template.
func Format(l Locale, id MessageID, args ...any) string {
	return fmt.Sprintf(Text(l, id), args...)
}

// TextList resolves every id in order.
func TextList(l Locale, ids []MessageID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, Text(l, id))
	}
	return out
}

// Weekday returns the short weekday message id for d.
func Weekday(d time.Weekday) MessageID {
	return weekdays[d]
}

var weekdays = [...]MessageID{
	time.Sunday:    WeekdaySun,
	time.Monday:    WeekdayMon,
	time.Tuesday:   WeekdayTue,
	time.Wednesday: WeekdayWed,
	time.Thursday:  WeekdayThu,
	time.Friday:    WeekdayFri,
	time.Saturday:  WeekdaySat,
}

var catalogs = map[Locale]map[MessageID]string{
	EN: english,
	UA: ukrainian,
}
