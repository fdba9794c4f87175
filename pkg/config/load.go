package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path and applies
// environment variable overrides. A missing file is not an error: the service
// is commonly deployed with environment variables only, so defaults are used
// and the override chain still runs.
//
// The loading sequence is:
//  1. Default values
//  2. Values from the YAML file (when present)
//  3. VESTA_* environment variable overrides
//  4. Platform environment variables (GEMINI_API_KEY, DATABASE_URL,
//     DATABASE_NAME, PORT)
//  5. Validation (fails fast if invalid)
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file: proceed with defaults and environment overrides.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(&cfg)
	applyPlatformEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format VESTA_SECTION_FIELD
// (e.g., VESTA_SERVER_LISTEN_ADDRESS) and always take precedence over
// file-based configuration.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("VESTA_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("VESTA_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("VESTA_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("VESTA_SERVER_IDLE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.IdleTimeout = d
		}
	}
	if val := os.Getenv("VESTA_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if val := os.Getenv("VESTA_SERVER_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.RequestTimeout = d
		}
	}
	if val := os.Getenv("VESTA_SERVER_CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.CORS.Enabled = b
		}
	}

	// Provider overrides
	if val := os.Getenv("VESTA_PROVIDER_BASE_URL"); val != "" {
		cfg.Provider.BaseURL = val
	}
	if val := os.Getenv("VESTA_PROVIDER_API_KEY"); val != "" {
		cfg.Provider.APIKey = val
	}
	if val := os.Getenv("VESTA_PROVIDER_MODEL"); val != "" {
		cfg.Provider.Model = val
	}
	if val := os.Getenv("VESTA_PROVIDER_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Provider.Timeout = d
		}
	}

	// Database overrides
	if val := os.Getenv("VESTA_DATABASE_PATH"); val != "" {
		cfg.Database.Path = val
	}
	if val := os.Getenv("VESTA_DATABASE_NAME"); val != "" {
		cfg.Database.Name = val
	}
	if val := os.Getenv("VESTA_DATABASE_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Database.BusyTimeout = d
		}
	}

	// Archive overrides
	if val := os.Getenv("VESTA_ARCHIVE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.Enabled = b
		}
	}
	if val := os.Getenv("VESTA_ARCHIVE_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Archive.RetentionDays = i
		}
	}
	if val := os.Getenv("VESTA_ARCHIVE_PRUNE_SCHEDULE"); val != "" {
		cfg.Archive.PruneSchedule = val
	}

	// Telemetry overrides
	if val := os.Getenv("VESTA_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("VESTA_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("VESTA_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("VESTA_TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}

// applyPlatformEnv applies the environment variables injected by the hosting
// platform. These take precedence over both the file and VESTA_* overrides
// because the platform owns credentials and port assignment.
func applyPlatformEnv(cfg *Config) {
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		cfg.Provider.APIKey = val
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		cfg.Database.Path = val
	}
	if val := os.Getenv("DATABASE_NAME"); val != "" {
		cfg.Database.Name = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.Server.ListenAddress = replacePort(cfg.Server.ListenAddress, val)
	}
}

// replacePort swaps the port of a host:port address, keeping the host.
// An address without a port keeps its full value as the host.
func replacePort(address, port string) string {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		host = address
	}
	return net.JoinHostPort(host, port)
}
