// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasourceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datasource_requests_total",
			Help: "Total number of analytics backend requests",
		},
		[]string{"endpoint", "status"},
	)

	DatasourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datasource_request_duration_seconds",
			Help:    "Duration of analytics backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// 0=closed, 1=half-open, 2=open
	DatasourceBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "datasource_circuit_breaker_state",
			Help: "Circuit breaker state of the analytics backend client",
		},
	)

	DashboardBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_builds_total",
			Help: "Total number of dashboard builds",
		},
		[]string{"dashboard", "result"},
	)

	DashboardEmptyPanels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_empty_panels_total",
			Help: "Panels built without data",
		},
		[]string{"dashboard", "panel"},
	)

	OptionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_option_cache_lookups_total",
			Help: "Filter option cache lookups",
		},
		[]string{"result"},
	)

	EventsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_ingested_total",
			Help: "Events received on the log endpoints",
		},
		[]string{"type", "result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)

// RecordDatasourceRequest counts one backend call. status is the HTTP code,
// or "error" when no response arrived.
func RecordDatasourceRequest(endpoint, status string, d time.Duration) {
	DatasourceRequests.WithLabelValues(endpoint, status).Inc()
	DatasourceDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func RecordDashboardBuild(dashboard string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	DashboardBuilds.WithLabelValues(dashboard, result).Inc()
}

func RecordEmptyPanel(dashboard, panel string) {
	DashboardEmptyPanels.WithLabelValues(dashboard, panel).Inc()
}

func RecordOptionCache(hit bool) {
	if hit {
		OptionCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	OptionCacheLookups.WithLabelValues("miss").Inc()
}

func RecordEvent(eventType, result string) {
	EventsIngested.WithLabelValues(eventType, result).Inc()
}

// Middleware records request counts and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		method := c.Method()
		HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
