// Package metrics provides Prometheus metrics collection for the flight
// offers service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestsTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SearchesTotal tracks flight searches by result.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flight_searches_total",
			Help: "Total number of flight searches",
		},
		[]string{"result"},
	)

	// SearchDuration tracks end-to-end search duration, upstream included.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flight_search_duration_seconds",
			Help:    "Flight search duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// ProviderRequestsTotal tracks upstream provider calls by provider and outcome.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"provider", "outcome"},
	)

	// CacheOperationsTotal tracks snapshot cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of snapshot cache operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks the number of live filter sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filter_sessions_active",
			Help: "Current number of filter sessions in the store",
		},
	)
)

// Middleware returns an Echo middleware that collects HTTP metrics. Errors
// are resolved through Echo's error handler before the status is read, so
// the recorded status code matches what the client received.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
			HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()

			return nil
		}
	}
}

// RecordSearch records one flight search with its duration and result.
func RecordSearch(duration time.Duration, result string) {
	SearchDuration.Observe(duration.Seconds())
	SearchesTotal.WithLabelValues(result).Inc()
}

// RecordProviderRequest records one upstream provider call.
func RecordProviderRequest(provider, outcome string) {
	ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordCacheOperation records one snapshot cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetActiveSessions updates the live session gauge.
func SetActiveSessions(count int) {
	ActiveSessions.Set(float64(count))
}
