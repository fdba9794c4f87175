package metrics

import (
	"trivium-hq/vesta/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// QuizMetrics tracks metrics for quiz serving.
//
// Metrics:
//   - vesta_quiz_served_total: Served quiz items by source (gemini or fallback)
type QuizMetrics struct {
	// Served items by source
	servedTotal *prometheus.CounterVec
}

// NewQuizMetrics creates and registers quiz metrics with the provided registry.
func NewQuizMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *QuizMetrics {
	qm := &QuizMetrics{
		servedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "quiz_served_total",
				Help:      "Total number of quiz items served by source",
			},
			[]string{"source"},
		),
	}

	registry.MustRegister(qm.servedTotal)

	return qm
}

// RecordServed records a served quiz item.
//
// Parameters:
//   - source: where the item came from ("gemini" or "fallback")
func (qm *QuizMetrics) RecordServed(source string) {
	qm.servedTotal.WithLabelValues(source).Inc()
}
