package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerRecording(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithNamespace("test"), WithRegistry(registry))

		Convey("When HTTP requests are observed", func() {
			manager.ObserveHTTPRequest("/api/v1/advice", http.MethodGet, 200, 20*time.Millisecond)
			manager.ObserveHTTPRequest("/api/v1/advice", http.MethodGet, 200, 30*time.Millisecond)
			manager.ObserveHTTPRequest("", http.MethodGet, 404, time.Millisecond)

			Convey("Then the counter is labelled by route, method and status", func() {
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("/api/v1/advice", "GET", "200")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("unmatched", "GET", "404")), ShouldEqual, 1)
			})
		})

		Convey("When forecast fetches and cache lookups are recorded", func() {
			manager.RecordForecastFetch(OutcomeOK, 100*time.Millisecond)
			manager.RecordForecastFetch(OutcomeError, 5*time.Millisecond)
			manager.RecordCacheLookup(true)
			manager.RecordCacheLookup(false)
			manager.RecordCacheLookup(false)

			Convey("Then each outcome is counted separately", func() {
				So(testutil.ToFloat64(manager.forecastFetches.WithLabelValues(OutcomeOK)), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.forecastFetches.WithLabelValues(OutcomeError)), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.cacheLookups.WithLabelValues("hit")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.cacheLookups.WithLabelValues("miss")), ShouldEqual, 2)
			})
		})

		Convey("When the handler is scraped", func() {
			manager.RecordGeocode("search", OutcomeOK)
			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then the namespaced series are exported", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(rec.Body.String(), "test_geocode_requests_total"), ShouldBeTrue)
			})
		})
	})
}

func TestNilManagerIsNoop(t *testing.T) {
	Convey("Given a nil manager", t, func() {
		var manager *Manager

		Convey("Then recording never panics", func() {
			So(func() {
				manager.ObserveHTTPRequest("/", http.MethodGet, 200, time.Millisecond)
				manager.RecordForecastFetch(OutcomeOK, time.Millisecond)
				manager.RecordCacheLookup(true)
				manager.RecordGeocode("reverse", OutcomeError)
			}, ShouldNotPanic)
			So(manager.Registry(), ShouldBeNil)
		})
	})
}

func TestHistogramBuckets(t *testing.T) {
	Convey("Given a manager with custom latency buckets", t, func() {
		manager := NewManager(WithHistogramBuckets([]float64{0.1, 0.5, 2}))
		manager.RecordForecastFetch(OutcomeOK, 300*time.Millisecond)

		Convey("Then the fetch histogram uses those bounds", func() {
			families, err := manager.Registry().Gather()
			So(err, ShouldBeNil)
			var bounds []float64
			for _, family := range families {
				if family.GetName() != "runready_forecast_fetch_duration_seconds" {
					continue
				}
				for _, bucket := range family.GetMetric()[0].GetHistogram().GetBucket() {
					bounds = append(bounds, bucket.GetUpperBound())
				}
			}
			So(bounds, ShouldResemble, []float64{0.1, 0.5, 2})
		})
	})

	Convey("Given an empty bucket list", t, func() {
		manager := NewManager(WithHistogramBuckets(nil))

		Convey("Then the Prometheus defaults are kept", func() {
			So(manager.buckets, ShouldResemble, prometheus.DefBuckets)
		})
	})
}
