package apitest

import (
	"testing"
	"time"

	"trivium-hq/vesta/pkg/providers"
)

// TestProviderConfig returns a provider configuration suitable for tests.
func TestProviderConfig(name string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:                name,
		Type:                "gemini",
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Model:               "gemini-1.5-flash-latest",
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestProviderConfigWithURL returns a test config pointed at a specific
// base URL, usually a MockServer.
func TestProviderConfigWithURL(name, baseURL string) providers.ProviderConfig {
	config := TestProviderConfig(name)
	config.BaseURL = baseURL
	return config
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorType fails the test if err is not of the expected type.
func AssertErrorType(t *testing.T, err error, expectedType interface{}) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	switch expectedType.(type) {
	case *providers.AuthError:
		if _, ok := err.(*providers.AuthError); !ok {
			t.Fatalf("expected AuthError, got %T: %v", err, err)
		}
	case *providers.RateLimitError:
		if _, ok := err.(*providers.RateLimitError); !ok {
			t.Fatalf("expected RateLimitError, got %T: %v", err, err)
		}
	case *providers.TimeoutError:
		if _, ok := err.(*providers.TimeoutError); !ok {
			t.Fatalf("expected TimeoutError, got %T: %v", err, err)
		}
	case *providers.ProviderError:
		if _, ok := err.(*providers.ProviderError); !ok {
			t.Fatalf("expected ProviderError, got %T: %v", err, err)
		}
	case *providers.ParseError:
		if _, ok := err.(*providers.ParseError); !ok {
			t.Fatalf("expected ParseError, got %T: %v", err, err)
		}
	case *providers.ValidationError:
		if _, ok := err.(*providers.ValidationError); !ok {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
	case *providers.ConfigError:
		if _, ok := err.(*providers.ConfigError); !ok {
			t.Fatalf("expected ConfigError, got %T: %v", err, err)
		}
	default:
		t.Fatalf("unknown expected error type %T", expectedType)
	}
}
