// Package config provides configuration management for Vesta.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration is loaded with:
//
//	cfg, err := config.Load("config.yaml")
//
// A missing file is not an error. The service is commonly deployed with
// environment variables only, so defaults are used and the override chain
// still runs.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention VESTA_SECTION_FIELD.
// For example:
//
//   - VESTA_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - VESTA_PROVIDER_MODEL overrides provider.model
//   - VESTA_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// In addition, the variables injected by the hosting platform are honored
// and take precedence over everything else:
//
//   - GEMINI_API_KEY sets provider.api_key
//   - DATABASE_URL sets database.path
//   - DATABASE_NAME sets database.name
//   - PORT replaces the port of server.listen_address
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. VESTA_* environment variable overrides
//  4. Platform environment variables
//  5. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("config.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Server.ListenAddress)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// includes required field checks (provider base URL and model), format
// validation (listen address, URLs, cron expressions), and range validation
// (non-negative timeouts and retention days).
//
// Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - provider.timeout: timeout must be positive
//	  - archive.retention_days: retention days must be non-negative
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses
// read-write locks to allow concurrent reads while protecting against
// concurrent writes during reload operations.
package config
