package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestInitialize(t *testing.T) {
	// Reset global state
	globalConfig = nil
	initOnce = *new(sync.Once)
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  listen_address: "127.0.0.1:8000"

provider:
  api_key: "test-key"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	err := Initialize(configPath)
	if err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config after initialization")
	}

	if cfg.Server.ListenAddress != "127.0.0.1:8000" {
		t.Errorf("expected listen address %q, got %q", "127.0.0.1:8000", cfg.Server.ListenAddress)
	}
}

func TestInitialize_MultipleCallsIgnored(t *testing.T) {
	// Reset global state
	globalConfig = nil
	initOnce = *new(sync.Once)
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath1 := filepath.Join(tmpDir, "config1.yaml")
	configPath2 := filepath.Join(tmpDir, "config2.yaml")

	config1Content := `
server:
  listen_address: "127.0.0.1:8000"

provider:
  api_key: "key1"
`

	config2Content := `
server:
  listen_address: "0.0.0.0:9090"

provider:
  api_key: "key2"
`

	if err := os.WriteFile(configPath1, []byte(config1Content), 0644); err != nil {
		t.Fatalf("failed to write config1 file: %v", err)
	}
	if err := os.WriteFile(configPath2, []byte(config2Content), 0644); err != nil {
		t.Fatalf("failed to write config2 file: %v", err)
	}

	// First initialization
	err := Initialize(configPath1)
	if err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	firstConfig := GetConfig()

	// Second initialization should be ignored
	Initialize(configPath2)

	secondConfig := GetConfig()

	// Should still have the first config
	if firstConfig.Server.ListenAddress != secondConfig.Server.ListenAddress {
		t.Error("second Initialize call should be ignored")
	}
	if firstConfig.Provider.APIKey != secondConfig.Provider.APIKey {
		t.Error("second Initialize call should be ignored")
	}
}

func TestGetConfig_BeforeInitialize(t *testing.T) {
	// Reset global state
	globalConfig = nil

	cfg := GetConfig()
	if cfg != nil {
		t.Error("expected nil config before initialization")
	}
}

func TestSetConfig(t *testing.T) {
	// Reset global state
	globalConfig = nil

	testCfg := validConfig()
	testCfg.Server.ListenAddress = "192.168.1.1:7070"

	SetConfig(testCfg)

	retrievedCfg := GetConfig()
	if retrievedCfg == nil {
		t.Fatal("expected non-nil config after SetConfig")
	}

	if retrievedCfg.Server.ListenAddress != "192.168.1.1:7070" {
		t.Errorf("expected listen address %q, got %q", "192.168.1.1:7070", retrievedCfg.Server.ListenAddress)
	}
}

func TestReload(t *testing.T) {
	// Reset global state
	globalConfig = nil
	initOnce = *new(sync.Once)
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	initialContent := `
server:
  listen_address: "127.0.0.1:8000"

provider:
  api_key: "initial-key"
`

	if err := os.WriteFile(configPath, []byte(initialContent), 0644); err != nil {
		t.Fatalf("failed to write initial config file: %v", err)
	}

	if err := Initialize(configPath); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	initialCfg := GetConfig()
	if initialCfg.Provider.APIKey != "initial-key" {
		t.Error("initial config not loaded correctly")
	}

	updatedContent := `
server:
  listen_address: "0.0.0.0:9090"

provider:
  api_key: "updated-key"

telemetry:
  logging:
    level: "debug"
    format: "text"
`

	if err := os.WriteFile(configPath, []byte(updatedContent), 0644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	if err := Reload(configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	reloadedCfg := GetConfig()
	if reloadedCfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected updated listen address %q, got %q", "0.0.0.0:9090", reloadedCfg.Server.ListenAddress)
	}
	if reloadedCfg.Provider.APIKey != "updated-key" {
		t.Errorf("expected updated API key %q, got %q", "updated-key", reloadedCfg.Provider.APIKey)
	}
	if reloadedCfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected updated logging level %q, got %q", "debug", reloadedCfg.Telemetry.Logging.Level)
	}
}

func TestReload_ValidationFailure(t *testing.T) {
	// Reset global state
	globalConfig = nil
	clearPlatformEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	validContent := `
server:
  listen_address: "127.0.0.1:8000"
`

	if err := os.WriteFile(configPath, []byte(validContent), 0644); err != nil {
		t.Fatalf("failed to write initial config file: %v", err)
	}

	if err := Reload(configPath); err != nil {
		t.Fatalf("failed to load valid config: %v", err)
	}

	originalCfg := GetConfig()

	invalidContent := `
provider:
  timeout: "-1s"

telemetry:
  logging:
    level: "invalid"
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("failed to write invalid config file: %v", err)
	}

	err := Reload(configPath)
	if err == nil {
		t.Fatal("expected error when reloading invalid config")
	}

	// Original config should be preserved
	currentCfg := GetConfig()
	if currentCfg.Server.ListenAddress != originalCfg.Server.ListenAddress {
		t.Error("original config should be preserved on reload failure")
	}
}

func TestMustGetConfig(t *testing.T) {
	// Reset global state
	globalConfig = nil
	initOnce = *new(sync.Once)

	// Test panic when not initialized
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustGetConfig to panic when not initialized")
		}
	}()

	MustGetConfig()
}

func TestMustGetConfig_AfterSetConfig(t *testing.T) {
	// Reset global state
	globalConfig = nil
	initOnce = *new(sync.Once)

	SetConfig(validConfig())

	// Should not panic
	cfg := MustGetConfig()
	if cfg == nil {
		t.Error("expected non-nil config from MustGetConfig")
	}
}
