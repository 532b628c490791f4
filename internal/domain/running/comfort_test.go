package running

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComfortScoreOptimumIsZero(t *testing.T) {
	require.Zero(t, ComfortScore(12, 50, 12, 0, 0))
}

func TestComfortScoreSumsPenalties(t *testing.T) {
	// temp 12 + humidity 4 + wind 2 + uv 4 + rain 2.5
	require.InDelta(t, 24.5, ComfortScore(22, 70, 22, 6, 40), 1e-9)
	// humidity penalty caps at 6, wind is unbounded
	require.InDelta(t, 6+10, ComfortScore(12, 100, 62, 0, 0), 1e-9)
}

func TestComfortScoreRainSteps(t *testing.T) {
	base := func(p float64) float64 { return ComfortScore(12, 50, 0, 0, p) }
	require.InDelta(t, 0.59998, base(29.999), 1e-9)
	require.Equal(t, 2.5, base(30))
	require.Equal(t, 2.5, base(59.9))
	require.Equal(t, 6.0, base(60))
}

func TestComfortScoreUVSteps(t *testing.T) {
	require.Zero(t, ComfortScore(12, 50, 0, 2.99, 0))
	require.Equal(t, 1.5, ComfortScore(12, 50, 0, 3, 0))
	require.Equal(t, 4.0, ComfortScore(12, 50, 0, 6, 0))
}

func TestScoreSamplesLeavesInputUntouched(t *testing.T) {
	in := []HourSample{{Time: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), Temperature: 20, Humidity: 50}}
	out := ScoreSamples(in)
	require.Zero(t, in[0].Score)
	require.InDelta(t, 9.6, out[0].Score, 1e-9)
}

func TestUVCategory(t *testing.T) {
	require.Equal(t, "low", UVCategory(2.9))
	require.Equal(t, "moderate", UVCategory(3))
	require.Equal(t, "high", UVCategory(6))
	require.Equal(t, "very_high", UVCategory(8))
	require.Equal(t, "extreme", UVCategory(11))
}
