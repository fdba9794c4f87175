package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"trivium-hq/vesta/pkg/archive"
	"trivium-hq/vesta/pkg/archive/retention"
	"trivium-hq/vesta/pkg/cli"
	"trivium-hq/vesta/pkg/config"
	"trivium-hq/vesta/pkg/providers"
	"trivium-hq/vesta/pkg/providers/gemini"
	"trivium-hq/vesta/pkg/server"
	"trivium-hq/vesta/pkg/storage"
	"trivium-hq/vesta/pkg/telemetry/logging"
	"trivium-hq/vesta/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Vesta server",
	Long: `Start the Vesta server with the specified configuration.

The server listens on the configured address and serves the quiz, probe,
and greeting endpoints. The database and the generative provider are both
optional: without them the probe reports their absence and the quiz
endpoint serves items from the built-in fallback pool.

Examples:
  # Start with default config
  vesta run

  # Start with custom config
  vesta run --config /etc/vesta/config.yaml

  # Override listen address
  vesta run --listen 0.0.0.0:9000

  # Validate config without starting the server
  vesta run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if _, err := logging.Setup(cfg.Telemetry.Logging); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Vesta v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	// Cancelled on the first SIGINT/SIGTERM; a second signal hard-exits.
	ctx := cli.SetupSignalHandler()

	var opts []server.Option

	// The store is optional: a missing path means no database, an open
	// failure is reported by /test while the server keeps running.
	var store storage.Store
	if cfg.Database.Path != "" {
		sqliteStore, err := storage.NewSQLiteStore(&storage.SQLiteConfig{
			Path:         cfg.Database.Path,
			Name:         cfg.Database.Name,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			WALMode:      true,
			BusyTimeout:  cfg.Database.BusyTimeout,
		})
		if err != nil {
			slog.Warn("database unavailable, continuing without it", "error", err)
			opts = append(opts, server.WithStore(nil, err))
			fmt.Println("⚠ Database unavailable (details on /test)")
		} else {
			store = sqliteStore
			defer store.Close()
			opts = append(opts, server.WithStore(store, nil))
			fmt.Printf("✓ Database opened (%s)\n", sqliteStore.Name())
		}
	} else {
		slog.Info("no database configured")
	}

	// The provider is optional: without an API key every quiz request
	// serves the deterministic fallback item.
	if cfg.Provider.APIKey != "" {
		provider, err := gemini.NewProvider(providers.ProviderConfig{
			Name:    "gemini",
			Type:    "gemini",
			BaseURL: cfg.Provider.BaseURL,
			APIKey:  cfg.Provider.APIKey,
			Model:   cfg.Provider.Model,
			Timeout: cfg.Provider.Timeout,
		})
		if err != nil {
			return cli.NewConfigError("provider", err.Error())
		}
		defer provider.Close()
		opts = append(opts, server.WithProvider(provider))
		fmt.Printf("✓ Provider initialized (%s)\n", cfg.Provider.Model)
	} else {
		slog.Warn("no API key configured, quiz endpoint serves fallback items only")
		fmt.Println("⚠ No API key: /quiz serves fallback items")
	}

	// Archiving and retention need an open store.
	if store != nil && cfg.Archive.Enabled {
		opts = append(opts, server.WithRecorder(archive.NewRecorder(store)))

		pruner := retention.NewPruner(store, &retention.Config{
			RetentionDays: cfg.Archive.RetentionDays,
			PruneSchedule: cfg.Archive.PruneSchedule,
		})
		if err := pruner.Start(ctx); err != nil {
			slog.Warn("failed to start retention pruner", "error", err)
		} else {
			defer pruner.Stop()
			if next := pruner.NextRun(); next != nil {
				slog.Debug("retention pruner started", "next_run", next)
			}
			fmt.Println("✓ Archive retention scheduled")
		}
	}

	if cfg.Telemetry.Metrics.Enabled {
		opts = append(opts, server.WithCollector(metrics.NewCollector(&cfg.Telemetry.Metrics, nil)))
	}

	srv, err := server.New(cfg, opts...)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Quiz endpoint: http://%s/quiz\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Probe endpoint: http://%s/test\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}
