// Package storage provides persistence for served quiz items and backs
// the database connectivity probe.
package storage

import (
	"context"
	"fmt"
	"time"
)

// Quiz record sources.
const (
	// SourceGemini marks items generated by the upstream model.
	SourceGemini = "gemini"

	// SourceFallback marks items served from the built-in pool.
	SourceFallback = "fallback"
)

// QuizRecord is one served quiz item, archived for history and reporting.
type QuizRecord struct {
	ID        string    `json:"id"`         // UUID v4
	CreatedAt time.Time `json:"created_at"` // When the item was served (UTC)
	Source    string    `json:"source"`     // "gemini" or "fallback"
	Prompt    string    `json:"prompt"`     // Served question
	Solution  string    `json:"solution"`   // Served answer
	Model     string    `json:"model"`      // Upstream model, empty for fallback
	LatencyMS int64     `json:"latency_ms"` // Upstream latency, 0 for fallback
	RequestID string    `json:"request_id"` // From the request ID middleware
}

// Store defines the interface for quiz storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Name returns the logical database name for logs and diagnostics.
	Name() string

	// Collections lists the table names in the backing database.
	// The connectivity probe reports these to clients.
	Collections(ctx context.Context) ([]string, error)

	// SaveQuiz persists a served quiz record.
	SaveQuiz(ctx context.Context, record *QuizRecord) error

	// LatestQuizzes returns up to limit records, newest first.
	LatestQuizzes(ctx context.Context, limit int) ([]*QuizRecord, error)

	// CountQuizzes returns the number of archived records.
	CountQuizzes(ctx context.Context) (int64, error)

	// PruneQuizzes deletes records created before the given time.
	// Returns the number of records deleted.
	PruneQuizzes(ctx context.Context, before time.Time) (int64, error)

	// Close releases resources held by the backend.
	Close() error
}

// StorageError represents an error from the storage backend.
type StorageError struct {
	Backend   string // Storage backend type ("sqlite", "memory")
	Operation string // Operation that failed ("open", "save", "prune", etc.)
	Cause     error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
