package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// createTempDB creates a temporary SQLite database for testing.
func createTempDB(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	config := &SQLiteConfig{
		Path:         dbPath,
		Name:         "vesta_test",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}

	store, err := NewSQLiteStore(config)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	return store, dbPath
}

// testRecord builds a quiz record with the given suffix and creation time.
func testRecord(suffix string, createdAt time.Time) *QuizRecord {
	return &QuizRecord{
		ID:        "quiz-" + suffix,
		CreatedAt: createdAt,
		Source:    SourceGemini,
		Prompt:    "Who wrote the play 'Hamlet'?",
		Solution:  "William Shakespeare",
		Model:     "gemini-1.5-flash-latest",
		LatencyMS: 412,
		RequestID: "req-" + suffix,
	}
}

func TestSQLiteStore_Initialize(t *testing.T) {
	store, dbPath := createTempDB(t)
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteStore_OpenFailure(t *testing.T) {
	config := &SQLiteConfig{
		Path:         filepath.Join(t.TempDir(), "missing", "nested", "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		BusyTimeout:  time.Second,
	}

	store, err := NewSQLiteStore(config)
	if err == nil {
		store.Close()
		t.Fatal("Expected error for unreachable database path")
	}
}

func TestSQLiteStore_Name(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	if got := store.Name(); got != "vesta_test" {
		t.Errorf("Name() = %v, want vesta_test", got)
	}

	t.Run("falls back to file base name", func(t *testing.T) {
		config := &SQLiteConfig{
			Path:         filepath.Join(t.TempDir(), "quiz.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			BusyTimeout:  time.Second,
		}

		unnamed, err := NewSQLiteStore(config)
		if err != nil {
			t.Fatalf("NewSQLiteStore() failed: %v", err)
		}
		defer unnamed.Close()

		if got := unnamed.Name(); got != "quiz.db" {
			t.Errorf("Name() = %v, want quiz.db", got)
		}
	})
}

func TestSQLiteStore_Collections(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	collections, err := store.Collections(context.Background())
	if err != nil {
		t.Fatalf("Collections() failed: %v", err)
	}

	want := []string{"quiz_history", "schema_version"}
	if len(collections) != len(want) {
		t.Fatalf("Collections() = %v, want %v", collections, want)
	}
	for i, name := range want {
		if collections[i] != name {
			t.Errorf("Collections()[%d] = %v, want %v", i, collections[i], name)
		}
	}
}

func TestSQLiteStore_SaveAndLatest(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 3; i++ {
		record := testRecord(fmt.Sprintf("%d", i), base.Add(time.Duration(i)*time.Minute))
		if err := store.SaveQuiz(ctx, record); err != nil {
			t.Fatalf("SaveQuiz() failed: %v", err)
		}
	}

	latest, err := store.LatestQuizzes(ctx, 2)
	if err != nil {
		t.Fatalf("LatestQuizzes() failed: %v", err)
	}

	if len(latest) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(latest))
	}

	if latest[0].ID != "quiz-2" || latest[1].ID != "quiz-1" {
		t.Errorf("Expected newest first (quiz-2, quiz-1), got (%s, %s)", latest[0].ID, latest[1].ID)
	}

	if latest[0].Prompt != "Who wrote the play 'Hamlet'?" {
		t.Errorf("Prompt = %v, want the stored prompt", latest[0].Prompt)
	}

	if latest[0].LatencyMS != 412 {
		t.Errorf("LatencyMS = %v, want 412", latest[0].LatencyMS)
	}
}

func TestSQLiteStore_CountQuizzes(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	ctx := context.Background()

	count, err := store.CountQuizzes(ctx)
	if err != nil {
		t.Fatalf("CountQuizzes() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty store, got %d records", count)
	}

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		if err := store.SaveQuiz(ctx, testRecord(fmt.Sprintf("%d", i), now)); err != nil {
			t.Fatalf("SaveQuiz() failed: %v", err)
		}
	}

	count, err = store.CountQuizzes(ctx)
	if err != nil {
		t.Fatalf("CountQuizzes() failed: %v", err)
	}
	if count != 5 {
		t.Errorf("CountQuizzes() = %d, want 5", count)
	}
}

func TestSQLiteStore_PruneQuizzes(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Two old records, two recent ones
	for i, age := range []time.Duration{-48 * time.Hour, -25 * time.Hour, -time.Hour, 0} {
		record := testRecord(fmt.Sprintf("%d", i), now.Add(age))
		if err := store.SaveQuiz(ctx, record); err != nil {
			t.Fatalf("SaveQuiz() failed: %v", err)
		}
	}

	deleted, err := store.PruneQuizzes(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneQuizzes() failed: %v", err)
	}

	if deleted != 2 {
		t.Errorf("PruneQuizzes() deleted %d records, want 2", deleted)
	}

	count, err := store.CountQuizzes(ctx)
	if err != nil {
		t.Fatalf("CountQuizzes() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 surviving records, got %d", count)
	}
}

func TestSQLiteStore_ConcurrentWrites(t *testing.T) {
	store, _ := createTempDB(t)
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				record := testRecord(fmt.Sprintf("%d-%d", worker, j), now)
				if err := store.SaveQuiz(ctx, record); err != nil {
					errs <- err
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent SaveQuiz() failed: %v", err)
	}

	count, err := store.CountQuizzes(ctx)
	if err != nil {
		t.Fatalf("CountQuizzes() failed: %v", err)
	}
	if count != 50 {
		t.Errorf("CountQuizzes() = %d, want 50", count)
	}
}

func TestSQLiteStore_Close(t *testing.T) {
	store, _ := createTempDB(t)

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Operations after close must fail, not panic
	err := store.SaveQuiz(context.Background(), testRecord("after-close", time.Now().UTC()))
	if err == nil {
		t.Error("SaveQuiz() after Close() should fail")
	}
}

func BenchmarkSQLiteStore_SaveQuiz(b *testing.B) {
	tmpDir := b.TempDir()
	config := &SQLiteConfig{
		Path:         filepath.Join(tmpDir, "bench.db"),
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}

	store, err := NewSQLiteStore(config)
	if err != nil {
		b.Fatalf("Failed to create SQLite store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		record := testRecord(fmt.Sprintf("bench-%d", i), now)
		if err := store.SaveQuiz(ctx, record); err != nil {
			b.Fatalf("SaveQuiz() failed: %v", err)
		}
	}
}
