package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trivium-hq/vesta/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:                true,
		Namespace:              "test",
		RequestDurationBuckets: []float64{0.1, 0.5, 1.0, 5.0},
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.config != cfg {
		t.Error("Collector config not set correctly")
	}
	if collector.registry != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_NilRegistryCreatesPrivate(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	if collector.Registry() == nil {
		t.Fatal("expected a registry to be created")
	}
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	tests := []struct {
		name     string
		method   string
		path     string
		status   string
		duration time.Duration
	}{
		{"quiz success", "GET", "/quiz", "200", 1200 * time.Millisecond},
		{"probe success", "GET", "/test", "200", 5 * time.Millisecond},
		{"method rejected", "POST", "/quiz", "405", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector.RecordHTTPRequest(tt.method, tt.path, tt.status, tt.duration)

			count := testutil.ToFloat64(collector.httpMetrics.requestsTotal.WithLabelValues(tt.method, tt.path, tt.status))
			if count < 1 {
				t.Errorf("Expected request counter >= 1, got %f", count)
			}
		})
	}
}

func TestCollector_RecordQuizServed(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	collector.RecordQuizServed("gemini")
	collector.RecordQuizServed("fallback")
	collector.RecordQuizServed("fallback")

	gemini := testutil.ToFloat64(collector.quizMetrics.servedTotal.WithLabelValues("gemini"))
	if gemini != 1 {
		t.Errorf("Expected 1 gemini serve, got %f", gemini)
	}

	fallback := testutil.ToFloat64(collector.quizMetrics.servedTotal.WithLabelValues("fallback"))
	if fallback != 2 {
		t.Errorf("Expected 2 fallback serves, got %f", fallback)
	}
}

func TestCollector_ProviderMetrics(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	t.Run("record latency", func(t *testing.T) {
		collector.RecordProviderLatency("gemini-1.5-flash-latest", 0.95)
		// Just verify it doesn't panic
	})

	t.Run("record error", func(t *testing.T) {
		collector.RecordProviderError("timeout")
		count := testutil.ToFloat64(collector.providerMetrics.errors.WithLabelValues("timeout"))
		if count < 1 {
			t.Errorf("Expected error count >= 1, got %f", count)
		}
	})
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	// These should not panic or record anything
	collector.RecordHTTPRequest("GET", "/quiz", "200", time.Second)
	collector.RecordQuizServed("fallback")
	collector.RecordProviderError("auth")

	count := testutil.ToFloat64(collector.quizMetrics.servedTotal.WithLabelValues("fallback"))
	if count != 0 {
		t.Errorf("Expected no recording when disabled, got %f", count)
	}
}

func TestCollector_PathCardinalityCapped(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)
	collector.cardinalityLimiter = NewCardinalityLimiter(2)

	collector.RecordHTTPRequest("GET", "/quiz", "200", time.Millisecond)
	collector.RecordHTTPRequest("GET", "/test", "200", time.Millisecond)
	collector.RecordHTTPRequest("GET", "/unknown-1", "404", time.Millisecond)
	collector.RecordHTTPRequest("GET", "/unknown-2", "404", time.Millisecond)

	other := testutil.ToFloat64(collector.httpMetrics.requestsTotal.WithLabelValues("GET", "other", "404"))
	if other != 2 {
		t.Errorf("Expected 2 requests folded into path=other, got %f", other)
	}
}

func TestCardinalityLimiter(t *testing.T) {
	limiter := NewCardinalityLimiter(3)

	// First 3 should be allowed
	if !limiter.Allow("label1") {
		t.Error("Expected first label to be allowed")
	}
	if !limiter.Allow("label2") {
		t.Error("Expected second label to be allowed")
	}
	if !limiter.Allow("label3") {
		t.Error("Expected third label to be allowed")
	}

	// Fourth should be rejected
	if limiter.Allow("label4") {
		t.Error("Expected fourth label to be rejected")
	}

	// Existing labels should still be allowed
	if !limiter.Allow("label1") {
		t.Error("Expected existing label to be allowed")
	}

	// Check count
	if limiter.Count() != 3 {
		t.Errorf("Expected count=3, got %d", limiter.Count())
	}
}

func TestCollector_Handler(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	collector.RecordQuizServed("fallback")

	srv := httptest.NewServer(collector.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("failed to scrape metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	if !strings.Contains(string(body), "test_quiz_served_total") {
		t.Errorf("expected quiz counter in exposition, got:\n%s", body)
	}
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	done := make(chan bool)

	// Spawn multiple goroutines recording metrics
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				collector.RecordHTTPRequest("GET", "/quiz", "200", time.Millisecond)
				collector.RecordQuizServed("gemini")
			}
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}

	count := testutil.ToFloat64(collector.httpMetrics.requestsTotal.WithLabelValues("GET", "/quiz", "200"))
	if count != 1000 {
		t.Errorf("Expected 1000 requests, got %f", count)
	}

	served := testutil.ToFloat64(collector.quizMetrics.servedTotal.WithLabelValues("gemini"))
	if served != 1000 {
		t.Errorf("Expected 1000 serves, got %f", served)
	}
}
