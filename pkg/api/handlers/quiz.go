package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"trivium-hq/vesta/pkg/api"
	"trivium-hq/vesta/pkg/api/middleware"
	"trivium-hq/vesta/pkg/archive"
	"trivium-hq/vesta/pkg/providers"
	"trivium-hq/vesta/pkg/storage"
	"trivium-hq/vesta/pkg/telemetry/metrics"
	"trivium-hq/vesta/pkg/trivia"
)

// QuizHandler serves trivia items. It asks the generative provider for a
// fresh item and degrades to the deterministic fallback pool whenever the
// provider is unconfigured or anything in the generation path fails.
type QuizHandler struct {
	provider  providers.Provider
	recorder  *archive.Recorder
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewQuizHandler creates the quiz endpoint handler. provider may be nil
// (no API key configured): every request then serves the fallback item.
// recorder and collector may be nil as well.
func NewQuizHandler(provider providers.Provider, recorder *archive.Recorder, collector *metrics.Collector) *QuizHandler {
	return &QuizHandler{
		provider:  provider,
		recorder:  recorder,
		collector: collector,
		logger:    slog.Default().With("component", "handlers.quiz"),
	}
}

// quizResult is what a single quiz request resolved to.
type quizResult struct {
	item      trivia.Item
	source    string
	model     string
	latencyMS int64
}

// ServeHTTP handles the quiz request.
func (h *QuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = api.WriteError(w, api.NewMethodNotAllowedError(r.Method))
		return
	}

	result := h.fetch(r.Context())

	if h.collector != nil {
		h.collector.RecordQuizServed(result.source)
	}

	h.recorder.Record(r.Context(), archive.Entry{
		Source:    result.source,
		Prompt:    result.item.Prompt,
		Solution:  result.item.Solution,
		Model:     result.model,
		LatencyMS: result.latencyMS,
		RequestID: middleware.GetRequestID(r.Context()),
	})

	_ = api.WriteJSON(w, http.StatusOK, result.item)
}

// fetch resolves the item to serve. Exactly one generation attempt is made
// per request; every failure path degrades to the fallback so the client
// always receives an item.
func (h *QuizHandler) fetch(ctx context.Context) quizResult {
	if h.provider == nil {
		return h.fallback(ctx, "no provider configured", nil)
	}

	start := time.Now()
	resp, err := h.provider.Generate(ctx, &providers.GenerateRequest{
		Prompt: trivia.InstructionPrompt,
	})
	latency := time.Since(start)

	if err != nil {
		h.recordProviderError(classifyProviderError(err))
		return h.fallback(ctx, "generation failed", err)
	}

	model := h.provider.GetConfig().Model
	if h.collector != nil {
		h.collector.RecordProviderLatency(model, latency.Seconds())
	}

	item, err := trivia.ExtractItem(resp.Text)
	if err != nil {
		h.recordProviderError("parse")
		return h.fallback(ctx, "response extraction failed", err)
	}

	return quizResult{
		item:      item,
		source:    storage.SourceGemini,
		model:     model,
		latencyMS: latency.Milliseconds(),
	}
}

// fallback selects the deterministic pool item for this deployment.
func (h *QuizHandler) fallback(ctx context.Context, reason string, err error) quizResult {
	if err != nil {
		h.logger.WarnContext(ctx, "serving fallback quiz item",
			"reason", reason,
			"error", err,
		)
	} else {
		h.logger.DebugContext(ctx, "serving fallback quiz item",
			"reason", reason,
		)
	}

	return quizResult{
		item:   trivia.SelectFallback(trivia.EnvIdentity()),
		source: storage.SourceFallback,
	}
}

func (h *QuizHandler) recordProviderError(kind string) {
	if h.collector != nil {
		h.collector.RecordProviderError(kind)
	}
}

// classifyProviderError maps a generation error onto a metric label.
// The buckets follow the provider error taxonomy: credential problems,
// throttling, deadline hits, unusable payloads, upstream HTTP failures,
// and transport failures that never produced a status code.
func classifyProviderError(err error) string {
	var authErr *providers.AuthError
	if errors.As(err, &authErr) {
		return "auth"
	}

	var rateErr *providers.RateLimitError
	if errors.As(err, &rateErr) {
		return "rate_limit"
	}

	var timeoutErr *providers.TimeoutError
	if errors.As(err, &timeoutErr) {
		return "timeout"
	}

	var parseErr *providers.ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}

	var provErr *providers.ProviderError
	if errors.As(err, &provErr) && provErr.StatusCode == 0 {
		return "network"
	}

	return "upstream"
}
