package metrics

import (
	"fmt"
	"sync"
	"time"

	"trivium-hq/vesta/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the main orchestrator for all Prometheus metrics in Vesta.
// It manages metric registration and provides a unified interface for
// recording metrics across all components.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// HTTP request metrics
	httpMetrics *HTTPMetrics

	// Quiz serving metrics
	quizMetrics *QuizMetrics

	// Provider metrics
	providerMetrics *ProviderMetrics

	// Cardinality tracking for the path label
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh private registry is
// created, keeping Vesta's metrics isolated from the default global registry.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = config.DefaultRequestDurationBuckets()
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(1000), // Max 1K unique label sets
	}

	c.httpMetrics = NewHTTPMetrics(cfg, registry)
	c.quizMetrics = NewQuizMetrics(cfg, registry)
	c.providerMetrics = NewProviderMetrics(cfg, registry)

	return c
}

// RecordHTTPRequest records metrics for a completed HTTP request.
//
// Parameters:
//   - method: HTTP method (e.g., "GET")
//   - path: request path (e.g., "/quiz")
//   - status: response status code as a string (e.g., "200")
//   - duration: total request duration
func (c *Collector) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	// Paths are client-controlled; cap their cardinality.
	labelSet := fmt.Sprintf("http:%s:%s", method, path)
	if !c.cardinalityLimiter.Allow(labelSet) {
		path = "other"
	}

	c.httpMetrics.RecordRequest(method, path, status, duration)
}

// RecordQuizServed records a served quiz item by source.
//
// Parameters:
//   - source: where the item came from ("gemini" or "fallback")
func (c *Collector) RecordQuizServed(source string) {
	if !c.config.Enabled {
		return
	}

	c.quizMetrics.RecordServed(source)
}

// RecordProviderLatency records the latency of a provider API call.
//
// Parameters:
//   - model: model identifier used for the request
//   - latency: API call latency in seconds
func (c *Collector) RecordProviderLatency(model string, latency float64) {
	if !c.config.Enabled {
		return
	}

	c.providerMetrics.RecordLatency(model, latency)
}

// RecordProviderError records an error from the provider.
//
// Parameters:
//   - kind: error kind (e.g., "auth", "timeout", "parse", "upstream")
func (c *Collector) RecordProviderError(kind string) {
	if !c.config.Enabled {
		return
	}

	c.providerMetrics.RecordError(kind)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
// Returns false if adding this label set would exceed the limit.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
