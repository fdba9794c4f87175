package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trivium-hq/vesta/pkg/storage"
)

// Entry describes one served quiz item to archive. The recorder assigns the
// record ID and the timestamp.
type Entry struct {
	// Source is "gemini" or "fallback".
	Source string

	// Prompt and Solution are the served fields, already capped.
	Prompt   string
	Solution string

	// Model is the upstream model identifier, empty for fallback items.
	Model string

	// LatencyMS is the upstream latency in milliseconds, 0 for fallback.
	LatencyMS int64

	// RequestID correlates the record with the request logs.
	RequestID string
}

// Recorder archives served quiz items. A single synchronous write per
// request keeps ordering obvious; SQLite inserts are far cheaper than the
// upstream call that precedes them.
type Recorder struct {
	store  storage.Store
	logger *slog.Logger
}

// NewRecorder creates a recorder backed by the given store. A nil store
// yields a recorder that silently drops entries, so callers never need to
// branch on whether archiving is configured.
func NewRecorder(store storage.Store) *Recorder {
	return &Recorder{
		store:  store,
		logger: slog.Default().With("component", "archive.recorder"),
	}
}

// Record archives one served item. It assigns a UUID, stamps the current
// UTC time, and saves through the store. Failures are logged and swallowed;
// Record never influences the response already sent to the client.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if r == nil || r.store == nil {
		return
	}

	record := &storage.QuizRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    entry.Source,
		Prompt:    entry.Prompt,
		Solution:  entry.Solution,
		Model:     entry.Model,
		LatencyMS: entry.LatencyMS,
		RequestID: entry.RequestID,
	}

	if err := r.store.SaveQuiz(ctx, record); err != nil {
		r.logger.WarnContext(ctx, "failed to archive quiz item",
			"error", err,
			"record_id", record.ID,
			"source", record.Source,
		)
		return
	}

	r.logger.DebugContext(ctx, "quiz item archived",
		"record_id", record.ID,
		"source", record.Source,
		"request_id", record.RequestID,
	)
}
