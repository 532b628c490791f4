package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/runready/internal/domain/advisor"
)

func TestRenderComfortWritesPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().RenderComfort(&buf, advisor.ChartData{
		Title:      "Running comfort",
		Subtitle:   "2025-06-02",
		SeriesName: "Score",
		BestName:   "Best",
		Labels:     []string{"08:00", "09:00", "10:00"},
		Scores:     []float64{3.1, 2.4, 4.8},
		Best:       []float64{0, 2.4, 0},
	})
	require.NoError(t, err)
	html := buf.String()
	require.Contains(t, html, "<title>Running comfort</title>")
	require.Contains(t, html, "09:00")
	require.Contains(t, html, "echarts")
}

func TestRenderComfortRejectsMismatchedSeries(t *testing.T) {
	err := NewRenderer().RenderComfort(&bytes.Buffer{}, advisor.ChartData{
		Labels: []string{"08:00"},
		Scores: []float64{1, 2},
	})
	require.Error(t, err)
}
