// Package server assembles the Vesta HTTP server: routes, middleware
// chain, and lifecycle.
//
// # Construction
//
// New takes the loaded configuration plus options for the optional
// collaborators. Everything is optional except the configuration: without
// a store the probe reports the database as unavailable, without a
// provider the quiz endpoint serves fallback items, without a collector
// no metrics are recorded.
//
//	srv, err := server.New(cfg,
//	    server.WithStore(store, nil),
//	    server.WithProvider(provider),
//	    server.WithRecorder(recorder),
//	    server.WithCollector(collector),
//	)
//
// # Lifecycle
//
// Start blocks until the context is cancelled or the listener fails, then
// shuts down gracefully within the configured ShutdownTimeout. Shutdown is
// idempotent; concurrent or repeated calls perform the shutdown once.
package server
