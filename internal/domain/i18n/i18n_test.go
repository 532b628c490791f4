package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogsAreTotal(t *testing.T) {
	for _, locale := range Locales() {
		catalog := catalogs[locale]
		require.Len(t, catalog, len(english), "locale %s", locale)
		for id := range english {
			msg, ok := catalog[id]
			require.True(t, ok, "locale %s misses %s", locale, id)
			require.NotEmpty(t, strings.TrimSpace(msg), "locale %s has blank %s", locale, id)
		}
	}
}

func TestTemplatesAgreeOnVerbs(t *testing.T) {
	for id, msg := range english {
		require.Equal(t, strings.Count(msg, "%"), strings.Count(ukrainian[id], "%"), "placeholder mismatch for %s", id)
	}
}

func TestParseLocale(t *testing.T) {
	cases := map[string]Locale{"EN": EN, "en-GB": EN, "UA": UA, "uk": UA, " uk-UA ": UA}
	for raw, want := range cases {
		got, ok := ParseLocale(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}
	_, ok := ParseLocale("de")
	require.False(t, ok)
}

func TestTextFallsBackToDefaultLocale(t *testing.T) {
	require.Equal(t, "brimmed cap", Text(Locale("XX"), HeadBrimmedCap))
	require.Equal(t, "кепка з козирком", Text(UA, HeadBrimmedCap))
	require.Equal(t, "missing.id", Text(EN, MessageID("missing.id")))
}

func TestFormatAndWeekday(t *testing.T) {
	require.Equal(t, "Feels like 21°C: practically the same as the actual temperature.", Format(EN, FeelsLikeMinimal, 21))
	require.Equal(t, "Пн", Text(UA, Weekday(time.Monday)))
	for d := time.Sunday; d <= time.Saturday; d++ {
		require.NotEmpty(t, Weekday(d))
	}
	require.Equal(t, []string{"warm hat", "sunglasses"}, TextList(EN, []MessageID{HeadWarmHat, HeadSunglasses}))
}
