package metrics

import (
	"trivium-hq/vesta/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics tracks metrics for the generative-language upstream.
//
// Metrics:
//   - vesta_provider_latency_seconds: Provider API latency by model
//   - vesta_provider_errors_total: Provider error count by kind
type ProviderMetrics struct {
	// Provider API latency histogram
	latency *prometheus.HistogramVec

	// Provider error counter
	errors *prometheus.CounterVec
}

// NewProviderMetrics creates and registers provider metrics with the provided registry.
func NewProviderMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ProviderMetrics {
	pm := &ProviderMetrics{
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "provider_latency_seconds",
				Help:      "Provider API call latency in seconds",
				Buckets:   cfg.RequestDurationBuckets, // Reuse request duration buckets
			},
			[]string{"model"},
		),

		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "provider_errors_total",
				Help:      "Total number of provider errors by kind",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		pm.latency,
		pm.errors,
	)

	return pm
}

// RecordLatency records the latency of a provider API call.
//
// Parameters:
//   - model: model identifier used for the request
//   - latencySeconds: API call latency in seconds
func (pm *ProviderMetrics) RecordLatency(model string, latencySeconds float64) {
	pm.latency.WithLabelValues(model).Observe(latencySeconds)
}

// RecordError records an error from the provider.
//
// Parameters:
//   - kind: error kind
//
// Common kinds:
//   - "auth": authentication/authorization error (401/403)
//   - "rate_limit": provider rate limit exceeded (429)
//   - "timeout": request deadline exceeded
//   - "parse": response parsing error
//   - "upstream": other non-2xx upstream status
//   - "network": network connectivity error
func (pm *ProviderMetrics) RecordError(kind string) {
	pm.errors.WithLabelValues(kind).Inc()
}
