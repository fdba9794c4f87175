package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearPlatformEnv blanks the platform-injected variables so tests observe
// file and default values only. t.Setenv restores prior values on cleanup.
func clearPlatformEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
}

func TestLoad_ValidFile(t *testing.T) {
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  listen_address: "127.0.0.1:9000"
  read_timeout: "60s"

provider:
  base_url: "https://example.test"
  api_key: "test-key-123"
  model: "gemini-test"
  timeout: "5s"

database:
  path: "./test-quiz.db"
  name: "trivia"

telemetry:
  logging:
    level: "debug"
    format: "text"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:9000" {
		t.Errorf("expected listen address %q, got %q", "127.0.0.1:9000", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 60*time.Second {
		t.Errorf("expected read timeout %v, got %v", 60*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.Provider.APIKey != "test-key-123" {
		t.Errorf("expected API key %q, got %q", "test-key-123", cfg.Provider.APIKey)
	}
	if cfg.Provider.Timeout != 5*time.Second {
		t.Errorf("expected provider timeout %v, got %v", 5*time.Second, cfg.Provider.Timeout)
	}
	if cfg.Database.Path != "./test-quiz.db" {
		t.Errorf("expected database path %q, got %q", "./test-quiz.db", cfg.Database.Path)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearPlatformEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected missing file to be tolerated, got: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected default listen address %q, got %q", DefaultListenAddress, cfg.Server.ListenAddress)
	}
	if cfg.Provider.BaseURL != DefaultProviderBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultProviderBaseURL, cfg.Provider.BaseURL)
	}
	if cfg.Provider.Model != DefaultProviderModel {
		t.Errorf("expected default model %q, got %q", DefaultProviderModel, cfg.Provider.Model)
	}
	if cfg.Provider.Timeout != DefaultProviderTimeout {
		t.Errorf("expected default provider timeout %v, got %v", DefaultProviderTimeout, cfg.Provider.Timeout)
	}
	if cfg.Provider.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.Provider.APIKey)
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected empty database path, got %q", cfg.Database.Path)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	malformedContent := `
server:
  listen_address: "0.0.0.0:8000"
  invalid yaml here: [
`

	if err := os.WriteFile(configPath, []byte(malformedContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
	if err != nil && !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidContent := `
provider:
  timeout: "-5s"

telemetry:
  logging:
    level: "invalid"
    format: "json"
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError in error chain, got %T: %v", err, err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  listen_address: "127.0.0.1:8000"

provider:
  api_key: "file-key"

telemetry:
  logging:
    level: "info"
    format: "json"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("VESTA_SERVER_LISTEN_ADDRESS", "0.0.0.0:9090")
	t.Setenv("VESTA_PROVIDER_API_KEY", "env-key-override")
	t.Setenv("VESTA_PROVIDER_TIMEOUT", "3s")
	t.Setenv("VESTA_TELEMETRY_LOGGING_LEVEL", "debug")
	t.Setenv("VESTA_ARCHIVE_RETENTION_DAYS", "30")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected listen address %q from env, got %q", "0.0.0.0:9090", cfg.Server.ListenAddress)
	}
	if cfg.Provider.APIKey != "env-key-override" {
		t.Errorf("expected API key %q from env, got %q", "env-key-override", cfg.Provider.APIKey)
	}
	if cfg.Provider.Timeout != 3*time.Second {
		t.Errorf("expected provider timeout %v from env, got %v", 3*time.Second, cfg.Provider.Timeout)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q from env, got %q", "debug", cfg.Telemetry.Logging.Level)
	}
	if cfg.Archive.RetentionDays != 30 {
		t.Errorf("expected retention days %d from env, got %d", 30, cfg.Archive.RetentionDays)
	}
}

func TestLoad_PlatformEnv(t *testing.T) {
	clearPlatformEnv(t)

	t.Setenv("GEMINI_API_KEY", "platform-key")
	t.Setenv("DATABASE_URL", "/data/quiz.db")
	t.Setenv("DATABASE_NAME", "trivia")
	t.Setenv("PORT", "9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Provider.APIKey != "platform-key" {
		t.Errorf("expected API key %q, got %q", "platform-key", cfg.Provider.APIKey)
	}
	if cfg.Database.Path != "/data/quiz.db" {
		t.Errorf("expected database path %q, got %q", "/data/quiz.db", cfg.Database.Path)
	}
	if cfg.Database.Name != "trivia" {
		t.Errorf("expected database name %q, got %q", "trivia", cfg.Database.Name)
	}
	if cfg.Server.ListenAddress != "0.0.0.0:9999" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:9999", cfg.Server.ListenAddress)
	}
}

func TestLoad_PlatformEnvBeatsOverrides(t *testing.T) {
	clearPlatformEnv(t)

	t.Setenv("VESTA_PROVIDER_API_KEY", "vesta-key")
	t.Setenv("GEMINI_API_KEY", "platform-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Provider.APIKey != "platform-key" {
		t.Errorf("expected platform key to win, got %q", cfg.Provider.APIKey)
	}
}

func TestReplacePort(t *testing.T) {
	tests := []struct {
		name    string
		address string
		port    string
		want    string
	}{
		{"host and port", "0.0.0.0:8000", "9000", "0.0.0.0:9000"},
		{"loopback", "127.0.0.1:8000", "80", "127.0.0.1:80"},
		{"no port", "localhost", "8080", "localhost:8080"},
		{"empty host", ":8000", "9000", ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replacePort(tt.address, tt.port)
			if got != tt.want {
				t.Errorf("replacePort(%q, %q) = %q, want %q", tt.address, tt.port, got, tt.want)
			}
		})
	}
}
