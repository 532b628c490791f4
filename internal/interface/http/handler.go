package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/runready/internal/domain/advisor"
	"github.com/yanqian/runready/internal/domain/forecast"
	"github.com/yanqian/runready/internal/domain/i18n"
	"github.com/yanqian/runready/internal/domain/location"
	"github.com/yanqian/runready/internal/domain/preferences"
	"github.com/yanqian/runready/internal/domain/running"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	advisorSvc     advisor.Service
	preferencesSvc preferences.Service
	locationSvc    location.Service
	defaultLoc     forecast.Location
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler. defaultLoc is used when a
// request carries no coordinates.
func NewHandler(advisorSvc advisor.Service, preferencesSvc preferences.Service, locationSvc location.Service, defaultLoc forecast.Location, logger *slog.Logger) *Handler {
	return &Handler{
		advisorSvc:     advisorSvc,
		preferencesSvc: preferencesSvc,
		locationSvc:    locationSvc,
		defaultLoc:     defaultLoc,
		logger:         logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Advice returns the full recommendation for one date and hour.
func (h *Handler) Advice(c *gin.Context) {
	req, ok := h.adviceRequest(c)
	if !ok {
		return
	}
	resp, err := h.advisorSvc.Advise(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeeklyForecast returns one outlook card per forecast day.
func (h *Handler) WeeklyForecast(c *gin.Context) {
	req, ok := h.adviceRequest(c)
	if !ok {
		return
	}
	days, err := h.advisorSvc.Weekly(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, days)
}

// ComfortChart renders the hourly comfort chart as an HTML page.
func (h *Handler) ComfortChart(c *gin.Context) {
	req, ok := h.adviceRequest(c)
	if !ok {
		return
	}
	var page bytes.Buffer
	if err := h.advisorSvc.Chart(c.Request.Context(), req, &page); err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

// GetPreferences returns the stored preferences of the calling profile.
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferencesSvc.Load(c.Request.Context(), profileFrom(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences merges a partial document into the stored preferences.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var patch preferences.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, invalidInput("request body must be a preferences object", err))
		return
	}
	prefs, err := h.preferencesSvc.Update(c.Request.Context(), profileFrom(c), patch)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ResetPreferences restores the defaults for the calling profile.
func (h *Handler) ResetPreferences(c *gin.Context) {
	prefs, err := h.preferencesSvc.Reset(c.Request.Context(), profileFrom(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// SearchLocations resolves a free text query into candidate places.
func (h *Handler) SearchLocations(c *gin.Context) {
	results, err := h.locationSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ReverseLocation labels a coordinate pair.
func (h *Handler) ReverseLocation(c *gin.Context) {
	loc, err := h.queryLocation(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	locale, err := h.queryLocale(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if c.Query("lang") == "" {
		if prefs, loadErr := h.preferencesSvc.Load(c.Request.Context(), profileFrom(c)); loadErr == nil {
			locale = prefs.Language
		}
	}
	result, lookupErr := h.locationSvc.Reverse(c.Request.Context(), loc, locale)
	if lookupErr != nil {
		abortWithError(c, fromDomainError(lookupErr))
		return
	}
	c.JSON(http.StatusOK, result)
}

// adviceRequest parses the shared advice query parameters and attaches the
// caller's preferences. The lang query parameter overrides the stored
// language for one request.
func (h *Handler) adviceRequest(c *gin.Context) (advisor.Request, bool) {
	loc, httpErr := h.queryLocation(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return advisor.Request{}, false
	}

	var hour *int
	if raw := strings.TrimSpace(c.Query("hour")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 23 {
			abortWithError(c, invalidInput("hour must be an integer between 0 and 23", err))
			return advisor.Request{}, false
		}
		hour = &v
	}

	heat, ok := running.ParseHeatPreference(c.Query("heat"))
	if !ok {
		abortWithError(c, invalidInput("heat must be one of neutral, runs_hot, runs_cold", nil))
		return advisor.Request{}, false
	}

	prefs, err := h.preferencesSvc.Load(c.Request.Context(), profileFrom(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return advisor.Request{}, false
	}
	if raw := c.Query("lang"); raw != "" {
		locale, httpErr := h.queryLocale(c)
		if httpErr != nil {
			abortWithError(c, httpErr)
			return advisor.Request{}, false
		}
		prefs.Language = locale
	}

	return advisor.Request{
		Location:    loc,
		Date:        strings.TrimSpace(c.Query("date")),
		Hour:        hour,
		Heat:        heat,
		Preferences: prefs,
	}, true
}

// queryLocation reads lat and lon. Both absent selects the default location.
func (h *Handler) queryLocation(c *gin.Context) (forecast.Location, *HTTPError) {
	rawLat := strings.TrimSpace(c.Query("lat"))
	rawLon := strings.TrimSpace(c.Query("lon"))
	if rawLat == "" && rawLon == "" {
		return h.defaultLoc, nil
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return forecast.Location{}, invalidInput("lat must be a number", err)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return forecast.Location{}, invalidInput("lon must be a number", err)
	}
	loc := forecast.Location{Lat: lat, Lon: lon}
	if err := loc.Validate(); err != nil {
		return forecast.Location{}, invalidInput(err.Error(), err)
	}
	return loc, nil
}

func (h *Handler) queryLocale(c *gin.Context) (i18n.Locale, *HTTPError) {
	raw := c.Query("lang")
	if raw == "" {
		return i18n.DefaultLocale, nil
	}
	locale, ok := i18n.ParseLocale(raw)
	if !ok {
		return "", invalidInput("lang must be one of EN, UA", nil)
	}
	return locale, nil
}
