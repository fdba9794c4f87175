package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements the Store interface using an in-memory map.
// This implementation is intended for testing only and should not be used
// in production.
type MemoryStore struct {
	name           string
	collections    []string
	records        map[string]*QuizRecord
	collectionsErr error
	saveErr        error
	mu             sync.RWMutex
}

// NewMemoryStore creates a new in-memory storage backend. The collection
// list mirrors the tables the SQLite backend creates.
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: []string{"quiz_history", "schema_version"},
		records:     make(map[string]*QuizRecord),
	}
}

// Name returns the logical database name.
func (s *MemoryStore) Name() string {
	return s.name
}

// Collections lists the simulated table names.
func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collectionsErr != nil {
		return nil, s.collectionsErr
	}

	names := make([]string, len(s.collections))
	copy(names, s.collections)
	return names, nil
}

// SaveQuiz persists a served quiz record to memory.
func (s *MemoryStore) SaveQuiz(ctx context.Context, record *QuizRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}

	// Copy to avoid mutation through the caller's pointer
	recordCopy := *record
	s.records[record.ID] = &recordCopy

	return nil
}

// LatestQuizzes returns up to limit records, newest first.
func (s *MemoryStore) LatestQuizzes(ctx context.Context, limit int) ([]*QuizRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	results := make([]*QuizRecord, 0, len(s.records))
	for _, record := range s.records {
		recordCopy := *record
		results = append(results, &recordCopy)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// CountQuizzes returns the number of archived records.
func (s *MemoryStore) CountQuizzes(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.records)), nil
}

// PruneQuizzes deletes records created before the given time.
func (s *MemoryStore) PruneQuizzes(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, record := range s.records {
		if record.CreatedAt.Before(before) {
			delete(s.records, id)
			deleted++
		}
	}

	return deleted, nil
}

// Close releases resources held by the storage backend.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*QuizRecord)
	return nil
}

// SetCollections replaces the simulated collection list (for testing).
func (s *MemoryStore) SetCollections(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = names
}

// SetCollectionsError makes Collections fail with err (for testing).
func (s *MemoryStore) SetCollectionsError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collectionsErr = err
}

// SetSaveError makes SaveQuiz fail with err (for testing).
func (s *MemoryStore) SetSaveError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = err
}

// GetByID retrieves a single record by ID (for testing).
func (s *MemoryStore) GetByID(id string) *QuizRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil
	}

	recordCopy := *record
	return &recordCopy
}

// Size returns the number of records in storage (for testing).
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
