// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: pages served by this front-end and
// outbound calls to the blog backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "blog_frontend"
)

var (
	// HTTP metrics - track page request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Backend metrics - track outbound calls to the blog API
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total number of backend API calls by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend API call duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	BackendRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_errors_total",
			Help:      "Total number of backend API calls that failed before a response was received",
		},
		[]string{"method", "path"},
	)
)

// ObserveBackendRequest records a completed backend call.
func ObserveBackendRequest(method, path, status string, seconds float64) {
	BackendRequestsTotal.WithLabelValues(method, path, status).Inc()
	BackendRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveBackendError records a backend call that never produced a response.
func ObserveBackendError(method, path string) {
	BackendRequestErrors.WithLabelValues(method, path).Inc()
}
