package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the quiz archive schema.
const Schema = `
-- Served quiz history
CREATE TABLE IF NOT EXISTS quiz_history (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    prompt TEXT NOT NULL,
    solution TEXT NOT NULL,
    model TEXT,
    latency_ms INTEGER,
    request_id TEXT
);

-- Schema version table
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
);

-- Indexes for history queries and retention pruning
CREATE INDEX IF NOT EXISTS idx_quiz_history_created_at ON quiz_history(created_at);
CREATE INDEX IF NOT EXISTS idx_quiz_history_source ON quiz_history(source);
`

// InsertSchemaVersion inserts the schema version into the schema_version table.
const InsertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// GetSchemaVersion retrieves the current schema version from the database.
const GetSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
