// Package telemetry groups the observability subpackages of Vesta.
//
// # Components
//
//   - logging: structured logging built on log/slog
//   - metrics: Prometheus metrics collection and the /metrics handler
//
// # Usage
//
//	// Install the process-wide logger from configuration.
//	logger, err := logging.Setup(cfg.Telemetry.Logging)
//	if err != nil {
//	    return err
//	}
//	logger.Info("logging configured", "level", cfg.Telemetry.Logging.Level)
//
//	// Build the metrics collector and expose it.
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// Both subpackages are safe for concurrent use and degrade to no-ops when
// their section of the configuration disables them.
package telemetry
