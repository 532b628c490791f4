// Package chart renders comfort charts as standalone HTML pages.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yanqian/runready/internal/domain/advisor"
)

// Renderer draws the hourly comfort score as a line with the best hours
// highlighted as bars.
type Renderer struct {
	width  string
	height string
}

// NewRenderer constructs a renderer with the default page size.
func NewRenderer() *Renderer {
	return &Renderer{width: "900px", height: "480px"}
}

// RenderComfort implements advisor.ChartRenderer.
func (r *Renderer) RenderComfort(w io.Writer, data advisor.ChartData) error {
	if len(data.Labels) != len(data.Scores) {
		return errors.New("chart labels and scores differ in length")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: data.Title,
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: data.Title, Subtitle: data.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	scores := make([]opts.LineData, 0, len(data.Scores))
	for _, v := range data.Scores {
		scores = append(scores, opts.LineData{Value: v})
	}
	line.SetXAxis(data.Labels).AddSeries(data.SeriesName, scores,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	if len(data.Best) > 0 {
		best := make([]opts.BarData, 0, len(data.Best))
		for _, v := range data.Best {
			best = append(best, opts.BarData{Value: v})
		}
		bar := charts.NewBar()
		bar.SetXAxis(data.Labels).AddSeries(data.BestName, best)
		line.Overlap(bar)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render comfort chart: %w", err)
	}
	return nil
}

var _ advisor.ChartRenderer = (*Renderer)(nil)
