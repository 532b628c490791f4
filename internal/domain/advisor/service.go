package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/running"
	apperrors "github.com/yanqian/runready/pkg/errors"
	"github.com/yanqian/runready/pkg/util"
)

const defaultMaxTiles = 16

// Service exposes the running advice capabilities.
type Service interface {
	Advise(ctx context.Context, req Request) (Response, error)
	Weekly(ctx context.Context, req Request) ([]DayView, error)
	Chart(ctx context.Context, req Request, w io.Writer) error
}

type service struct {
	cfg       Config
	forecasts forecast.Service
	renderer  ChartRenderer
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the advisor domain.
func NewService(cfg Config, forecasts forecast.Service, renderer ChartRenderer, logger *slog.Logger) Service {
	if cfg.MaxTiles <= 0 {
		cfg.MaxTiles = defaultMaxTiles
	}
	return &service{
		cfg:       cfg,
		forecasts: forecasts,
		renderer:  renderer,
		logger:    logger.With("component", "advisor.service"),
		now:       time.Now,
	}
}

func (s *service) Advise(ctx context.Context, req Request) (Response, error) {
	fc, date, hours, err := s.load(ctx, req)
	if err != nil {
		return Response{}, err
	}
	locale := req.Preferences.Language
	prefs := req.Preferences

	res := Response{
		Location:       fc.Location,
		Timezone:       fc.Timezone,
		Date:           date,
		AvailableDates: fc.Dates(),
		BestSlots:      []SlotView{},
		Warnings:       []string{},
		Hours:          []HourView{},
		Preferences:    prefs,
	}
	if !fc.FetchedAt.IsZero() {
		res.FetchedAt = fc.FetchedAt.Format(time.RFC3339)
	}
	if len(hours) == 0 {
		s.logger.Info("no forecast hours for date", "date", date, "key", fc.Location.Key())
		return res, nil
	}

	current, err := selectHour(hours, req.Hour)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}

	heat := req.Heat
	if heat == "" {
		heat = running.HeatNeutral
	}
	outfit := running.OutfitAdvice(running.OutfitInput{
		Temperature: current.Temperature,
		Wind:        current.Wind,
		Humidity:    current.Humidity,
		UV:          current.UV,
		Heat:        heat,
		Gender:      prefs.Gender,
		Intensity:   prefs.Intensity,
	})
	spf := running.SPFAdvice(current.UV)
	water := running.WaterAdvice(prefs.Duration, current.Temperature, current.Humidity, prefs.Intensity)
	best := running.BestHourSlots(hours, prefs.AllowDark, prefs.PreferredTime)

	currentView := toHourView(current)
	res.Current = &currentView
	res.Outfit = localizeOutfit(locale, outfit)
	res.SPF = &SPFView{SPF: spf.SPF, Note: i18n.Text(locale, spf.Note)}
	res.Water = localizeWater(locale, water)
	res.BestSlots = toSlotViews(best)
	res.Warnings = i18n.TextList(locale, running.SafetyWarnings(current))
	res.Interpretations = interpret(locale, current)
	res.ComfortLevel = i18n.Text(locale, running.ComfortLevelFor(current.Score))
	res.UVPeak = uvPeak(hours)
	res.Hours = toHourViews(hours, s.cfg.MaxTiles)
	res.Summary = quickSummary(locale, current, res.Outfit, spf, water, best)
	return res, nil
}

func (s *service) Weekly(ctx context.Context, req Request) ([]DayView, error) {
	fc, err := s.forecasts.Get(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	locale := req.Preferences.Language
	days := make([]DayView, 0, len(fc.Days))
	for _, d := range fc.Days {
		score, level, start := running.DayOutlook(d.Conditions(), req.Preferences.PreferredTime)
		weekday := ""
		if parsed, err := util.ParseDate(d.Date); err == nil {
			weekday = i18n.Text(locale, i18n.Weekday(parsed.Weekday()))
		}
		days = append(days, DayView{
			Date:          d.Date,
			Weekday:       weekday,
			TempMax:       d.TempMax,
			TempMin:       d.TempMin,
			PrecipMax:     d.PrecipMax,
			UVMax:         d.UVMax,
			WindMax:       d.WindMax,
			Score:         round1(score),
			Comfort:       i18n.Text(locale, level),
			SuggestedTime: fmt.Sprintf("%02d:00", start),
		})
	}
	return days, nil
}

func (s *service) Chart(ctx context.Context, req Request, w io.Writer) error {
	if s.renderer == nil {
		return apperrors.Wrap(apperrors.CodeNotFound, "chart rendering is disabled", nil)
	}
	_, date, hours, err := s.load(ctx, req)
	if err != nil {
		return err
	}
	locale := req.Preferences.Language
	best := running.BestHourSlots(hours, req.Preferences.AllowDark, req.Preferences.PreferredTime)
	bestAt := make(map[int64]float64, len(best))
	for _, b := range best {
		bestAt[b.Time.Unix()] = round1(b.Score)
	}

	data := ChartData{
		Title:      i18n.Text(locale, i18n.ChartTitle),
		Subtitle:   date,
		SeriesName: i18n.Text(locale, i18n.ChartSeries),
		BestName:   i18n.Text(locale, i18n.ChartBest),
		Labels:     make([]string, 0, len(hours)),
		Scores:     make([]float64, 0, len(hours)),
		Best:       make([]float64, 0, len(hours)),
	}
	for _, h := range hours {
		data.Labels = append(data.Labels, util.ClockLabel(h.Time))
		data.Scores = append(data.Scores, round1(h.Score))
		if v, ok := bestAt[h.Time.Unix()]; ok {
			data.Best = append(data.Best, v)
		} else {
			data.Best = append(data.Best, 0)
		}
	}
	if err := s.renderer.RenderComfort(w, data); err != nil {
		return fmt.Errorf("render comfort chart: %w", err)
	}
	return nil
}

// load fetches the forecast and returns the scored hours of the requested
// local date.
func (s *service) load(ctx context.Context, req Request) (forecast.Forecast, string, []running.HourSample, error) {
	date := strings.TrimSpace(req.Date)
	if date != "" {
		if _, err := util.ParseDate(date); err != nil {
			return forecast.Forecast{}, "", nil, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
		}
	}
	fc, err := s.forecasts.Get(ctx, req.Location)
	if err != nil {
		return forecast.Forecast{}, "", nil, err
	}
	now := s.now()
	if date == "" {
		date = util.DateKey(now.In(fc.Zone()))
	}
	return fc, date, running.ScoreSamples(fc.HoursOn(date, now)), nil
}

func selectHour(hours []running.HourSample, hour *int) (running.HourSample, error) {
	if hour == nil {
		return hours[0], nil
	}
	if *hour < 0 || *hour > 23 {
		return running.HourSample{}, errors.New("hour must be within [0, 23]")
	}
	for _, h := range hours {
		if h.Time.Hour() == *hour {
			return h, nil
		}
	}
	return running.HourSample{}, fmt.Errorf("hour %02d:00 is not available for the selected date", *hour)
}
