package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// Name is the logical database name reported by the connectivity probe.
	// When empty, the base name of Path is used.
	Name string

	// MaxOpenConns is the maximum number of open connections to the database.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/vesta.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db            *sql.DB
	config        *SQLiteConfig
	preparedStmts map[string]*sql.Stmt
	mu            sync.RWMutex
	logger        *slog.Logger
}

// NewSQLiteStore creates a new SQLite storage backend.
// It initializes the database schema and prepares the hot statements.
func NewSQLiteStore(config *SQLiteConfig) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "storage.sqlite")

	db, err := sql.Open("sqlite3", buildDSN(config))
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStore{
		db:            db,
		config:        config,
		preparedStmts: make(map[string]*sql.Stmt),
		logger:        logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite store initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
		"max_open_conns", config.MaxOpenConns,
	)

	return s, nil
}

// buildDSN renders the mattn/go-sqlite3 DSN. Busy timeout and journal mode
// ride as query parameters so every pooled connection picks them up.
func buildDSN(config *SQLiteConfig) string {
	params := url.Values{}
	params.Set("_busy_timeout", strconv.FormatInt(config.BusyTimeout.Milliseconds(), 10))
	if config.WALMode {
		params.Set("_journal_mode", "WAL")
	}
	return "file:" + config.Path + "?" + params.Encode()
}

// initialize creates the schema and verifies its version. sql.Open does not
// touch the file, so the first statement here is also the connectivity check.
func (s *SQLiteStore) initialize() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError("sqlite", "create_schema", err)
	}

	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(GetSchemaVersion).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return NewStorageError("sqlite", "get_schema_version", err)
	}

	if version != SchemaVersion {
		return NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	insertStmt, err := s.db.Prepare(`
		INSERT INTO quiz_history (
			id, created_at, source, prompt, solution, model, latency_ms, request_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return NewStorageError("sqlite", "prepare_insert", err)
	}
	s.preparedStmts["insert_quiz"] = insertStmt

	s.logger.Debug("schema version verified", "version", version)

	return nil
}

// Name returns the logical database name for logs and diagnostics.
func (s *SQLiteStore) Name() string {
	if s.config.Name != "" {
		return s.config.Name
	}
	return filepath.Base(s.config.Path)
}

// Collections lists the user table names in the backing database,
// ordered by name. Internal sqlite_* tables are excluded.
func (s *SQLiteStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, NewStorageError("sqlite", "collections", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, NewStorageError("sqlite", "scan", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "collections", err)
	}

	return names, nil
}

// SaveQuiz persists a served quiz record.
func (s *SQLiteStore) SaveQuiz(ctx context.Context, record *QuizRecord) error {
	if record == nil {
		return NewStorageError("sqlite", "save", fmt.Errorf("nil record"))
	}

	s.mu.RLock()
	stmt := s.preparedStmts["insert_quiz"]
	s.mu.RUnlock()

	_, err := stmt.ExecContext(ctx,
		record.ID,
		record.CreatedAt,
		record.Source,
		record.Prompt,
		record.Solution,
		record.Model,
		record.LatencyMS,
		record.RequestID,
	)
	if err != nil {
		return NewStorageError("sqlite", "save", err)
	}

	return nil
}

// LatestQuizzes returns up to limit records, newest first.
func (s *SQLiteStore) LatestQuizzes(ctx context.Context, limit int) ([]*QuizRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, source, prompt, solution, model, latency_ms, request_id
		FROM quiz_history
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, NewStorageError("sqlite", "latest", err)
	}
	defer rows.Close()

	records := []*QuizRecord{}
	for rows.Next() {
		var record QuizRecord
		if err := rows.Scan(
			&record.ID,
			&record.CreatedAt,
			&record.Source,
			&record.Prompt,
			&record.Solution,
			&record.Model,
			&record.LatencyMS,
			&record.RequestID,
		); err != nil {
			return nil, NewStorageError("sqlite", "scan", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "latest", err)
	}

	return records, nil
}

// CountQuizzes returns the number of archived records.
func (s *SQLiteStore) CountQuizzes(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_history`).Scan(&count)
	if err != nil {
		return 0, NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// PruneQuizzes deletes records created before the given time.
// Returns the number of records deleted.
func (s *SQLiteStore) PruneQuizzes(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM quiz_history WHERE created_at < ?`, before)
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, NewStorageError("sqlite", "prune", err)
	}

	return count, nil
}

// Close releases resources held by the storage backend.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	for _, stmt := range s.preparedStmts {
		stmt.Close()
	}
	s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return NewStorageError("sqlite", "close", err)
	}

	s.logger.Info("SQLite store closed")
	return nil
}
