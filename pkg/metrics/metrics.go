// Package metrics exposes the Prometheus collectors used by the advisor service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes reported by RecordForecastFetch.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Manager owns the collectors and the registry they are registered on.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	registry  *prometheus.Registry
	buckets   []float64

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	forecastFetches     *prometheus.CounterVec
	forecastFetchTime   prometheus.Histogram
	cacheLookups        *prometheus.CounterVec
	geocodeRequests     *prometheus.CounterVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry registers collectors on the given registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithHistogramBuckets overrides the latency buckets, in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// NewManager builds the collectors on a dedicated registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "runready",
		registry:  prometheus.NewRegistry(),
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   m.buckets,
	}, []string{"route", "method"})
	m.forecastFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "forecast",
		Name:      "fetches_total",
		Help:      "Upstream forecast fetches by outcome.",
	}, []string{"outcome"})
	m.forecastFetchTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "forecast",
		Name:      "fetch_duration_seconds",
		Help:      "Upstream forecast fetch latency.",
		Buckets:   m.buckets,
	})
	m.cacheLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "forecast",
		Name:      "cache_lookups_total",
		Help:      "Forecast cache lookups by result.",
	}, []string{"result"})
	m.geocodeRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "geocode",
		Name:      "requests_total",
		Help:      "Geocoding requests by kind and outcome.",
	}, []string{"kind", "outcome"})
	return m
}

// ObserveHTTPRequest records one served request.
func (m *Manager) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordForecastFetch records one upstream forecast call.
func (m *Manager) RecordForecastFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.forecastFetches.WithLabelValues(outcome).Inc()
	m.forecastFetchTime.Observe(elapsed.Seconds())
}

// RecordCacheLookup records a forecast cache hit or miss.
func (m *Manager) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// RecordGeocode records one geocoding call.
func (m *Manager) RecordGeocode(kind, outcome string) {
	if m == nil {
		return
	}
	m.geocodeRequests.WithLabelValues(kind, outcome).Inc()
}

// Registry exposes the underlying registry for scraping and tests.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
