package metrics

import (
	"time"

	"trivium-hq/vesta/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks metrics for HTTP request handling.
//
// Metrics:
//   - vesta_http_requests_total: Total request count by method, path, status
//   - vesta_http_request_duration_seconds: Request duration histogram
type HTTPMetrics struct {
	// Total request count
	requestsTotal *prometheus.CounterVec

	// Request duration histogram
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics with the provided registry.
func NewHTTPMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *HTTPMetrics {
	hm := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		hm.requestsTotal,
		hm.requestDuration,
	)

	return hm
}

// RecordRequest records metrics for a completed HTTP request.
func (hm *HTTPMetrics) RecordRequest(method, path, status string, duration time.Duration) {
	hm.requestsTotal.WithLabelValues(method, path, status).Inc()
	hm.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
