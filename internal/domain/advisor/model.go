package advisor

import (
	"io"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/preferences"
	"github.com/yanqian/runready/internal/domain/running"
)

// Request captures the inputs of one advice computation.
type Request struct {
	Location    forecast.Location
	Date        string
	Hour        *int
	Heat        running.HeatPreference
	Preferences preferences.Preferences
}

// Response is serialized back to API consumers.
type Response struct {
	Location        forecast.Location       `json:"location"`
	Timezone        string                  `json:"timezone"`
	Date            string                  `json:"date"`
	AvailableDates  []string                `json:"availableDates"`
	Current         *HourView               `json:"current"`
	Summary         string                  `json:"summary"`
	Outfit          *OutfitView             `json:"outfit"`
	SPF             *SPFView                `json:"spf"`
	Water           *WaterView              `json:"water"`
	BestSlots       []SlotView              `json:"bestSlots"`
	Warnings        []string                `json:"warnings"`
	Interpretations *Interpretations        `json:"interpretations"`
	ComfortLevel    string                  `json:"comfortLevel"`
	UVPeak          *UVPeak                 `json:"uvPeak"`
	Hours           []HourView              `json:"hours"`
	Preferences     preferences.Preferences `json:"preferences"`
	FetchedAt       string                  `json:"fetchedAt"`
}

// HourView is one scored hour as rendered on a tile.
type HourView struct {
	Time        string  `json:"time"`
	Label       string  `json:"label"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`
	UV          float64 `json:"uv"`
	UVCategory  string  `json:"uvCategory"`
	Wind        float64 `json:"wind"`
	Precip      float64 `json:"precip"`
	Score       float64 `json:"score"`
}

// OutfitView is the localized outfit.
type OutfitView struct {
	Top         string   `json:"top"`
	Bottom      string   `json:"bottom"`
	Headwear    []string `json:"headwear"`
	Footwear    []string `json:"footwear"`
	Accessories []string `json:"accessories"`
	Extras      []string `json:"extras"`
}

// SPFView is the localized sunscreen advice.
type SPFView struct {
	SPF  int    `json:"spf"`
	Note string `json:"note"`
}

// WaterView is the localized hydration plan.
type WaterView struct {
	TotalML      int    `json:"totalMl"`
	Electrolytes bool   `json:"electrolytes"`
	BeforeML     int    `json:"beforeMl"`
	DuringML     int    `json:"duringMl"`
	AfterML      int    `json:"afterMl"`
	Pacing       string `json:"pacing"`
}

// SlotView is one recommended start hour.
type SlotView struct {
	Time  string  `json:"time"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Interpretations explain the current conditions in plain words.
type Interpretations struct {
	Wind      string `json:"wind"`
	Humidity  string `json:"humidity"`
	FeelsLike string `json:"feelsLike"`
}

// UVPeak describes the strongest UV hour of the selected day.
type UVPeak struct {
	Max      float64 `json:"max"`
	Label    string  `json:"label"`
	Category string  `json:"category"`
}

// DayView is one row of the weekly outlook.
type DayView struct {
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	TempMax       float64 `json:"tempMax"`
	TempMin       float64 `json:"tempMin"`
	PrecipMax     float64 `json:"precipMax"`
	UVMax         float64 `json:"uvMax"`
	WindMax       float64 `json:"windMax"`
	Score         float64 `json:"score"`
	Comfort       string  `json:"comfort"`
	SuggestedTime string  `json:"suggestedTime"`
}

// ChartData is the localized input of the comfort chart.
type ChartData struct {
	Title      string
	Subtitle   string
	SeriesName string
	BestName   string
	Labels     []string
	Scores     []float64
	Best       []float64
}

// ChartRenderer writes a comfort chart page.
type ChartRenderer interface {
	RenderComfort(w io.Writer, data ChartData) error
}

// Config wires runtime settings for the advisor domain.
type Config struct {
	MaxTiles int
}
