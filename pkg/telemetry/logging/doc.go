// Package logging provides structured logging setup for Vesta.
//
// It builds log/slog loggers from configuration: JSON or text output,
// a level parsed from config, and optional source locations. Setup installs
// the logger as slog.Default so components can derive their own with
// slog.Default().With("component", name).
package logging
