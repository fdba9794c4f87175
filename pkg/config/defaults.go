package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "0.0.0.0:8000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled          = true
	DefaultCORSMaxAge           = 3600 // 1 hour
	DefaultCORSAllowCredentials = true

	// Provider defaults
	DefaultProviderBaseURL = "https://generativelanguage.googleapis.com"
	DefaultProviderModel   = "gemini-1.5-flash-latest"
	DefaultProviderTimeout = 10 * time.Second

	// Database defaults
	DefaultDatabaseBusyTimeout  = 5 * time.Second
	DefaultDatabaseMaxOpenConns = 10
	DefaultDatabaseMaxIdleConns = 5

	// Archive defaults
	DefaultArchiveEnabled       = true
	DefaultArchiveRetentionDays = 90
	DefaultArchivePruneSchedule = "0 3 * * *"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "vesta"
)

// DefaultRequestDurationBuckets returns the default histogram buckets for
// request duration metrics, in seconds.
func DefaultRequestDurationBuckets() []float64 {
	return []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0}
}

// ApplyDefaults applies default values to the configuration.
// It sets defaults for any fields that have zero values.
// This method is idempotent and safe to call multiple times.
func (c *Config) ApplyDefaults() {
	// Server defaults
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = DefaultListenAddress
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Server.MaxHeaderBytes == 0 {
		c.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	// CORS defaults
	applyCORSDefaults(&c.Server.CORS)

	// Provider defaults
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultProviderBaseURL
	}
	if c.Provider.Model == "" {
		c.Provider.Model = DefaultProviderModel
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultProviderTimeout
	}

	// Database defaults
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = DefaultDatabaseBusyTimeout
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = DefaultDatabaseMaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = DefaultDatabaseMaxIdleConns
	}

	// Archive defaults. Enabled follows the CORS convention: an untouched
	// zero-value section means "use defaults".
	if !c.Archive.Enabled && c.Archive.RetentionDays == 0 && c.Archive.PruneSchedule == "" {
		c.Archive.Enabled = DefaultArchiveEnabled
	}
	if c.Archive.RetentionDays == 0 {
		c.Archive.RetentionDays = DefaultArchiveRetentionDays
	}
	if c.Archive.PruneSchedule == "" {
		c.Archive.PruneSchedule = DefaultArchivePruneSchedule
	}

	// Telemetry defaults
	if c.Telemetry.Logging.Level == "" {
		c.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if c.Telemetry.Logging.Format == "" {
		c.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if !c.Telemetry.Metrics.Enabled {
		hasAnyConfig := c.Telemetry.Metrics.Path != "" ||
			c.Telemetry.Metrics.Namespace != "" ||
			len(c.Telemetry.Metrics.RequestDurationBuckets) > 0

		if !hasAnyConfig {
			c.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
		}
	}
	if c.Telemetry.Metrics.Path == "" {
		c.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if c.Telemetry.Metrics.Namespace == "" {
		c.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(c.Telemetry.Metrics.RequestDurationBuckets) == 0 {
		c.Telemetry.Metrics.RequestDurationBuckets = DefaultRequestDurationBuckets()
	}
}

// applyCORSDefaults applies default values to CORS configuration.
func applyCORSDefaults(cors *CORSConfig) {
	// Enabled defaults to true unless the user configured CORS explicitly;
	// an untouched zero-value section means "use defaults".
	if !cors.Enabled {
		hasAnyConfig := len(cors.AllowedOrigins) > 0 ||
			len(cors.AllowedMethods) > 0 ||
			len(cors.AllowedHeaders) > 0 ||
			cors.MaxAge > 0

		if !hasAnyConfig {
			cors.Enabled = DefaultCORSEnabled
			cors.AllowCredentials = DefaultCORSAllowCredentials
		}
	}

	if len(cors.AllowedOrigins) == 0 {
		cors.AllowedOrigins = []string{"*"}
	}
	if len(cors.AllowedMethods) == 0 {
		cors.AllowedMethods = []string{"*"}
	}
	if len(cors.AllowedHeaders) == 0 {
		cors.AllowedHeaders = []string{"*"}
	}
	if cors.MaxAge == 0 {
		cors.MaxAge = DefaultCORSMaxAge
	}
}
