package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"trivium-hq/vesta/pkg/cli"
	"trivium-hq/vesta/pkg/config"
	"trivium-hq/vesta/pkg/storage"
)

var historyFlags struct {
	limit  int
	format string
	output string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently archived quiz items",
	Long: `Show recently served quiz items from the archive, newest first.

The archive records every item served by /quiz: the question, the answer,
whether it came from the model or the fallback pool, and the upstream
latency. Requires a configured database.

Examples:
  # Show the last 20 items
  vesta history

  # Show the last 5 items
  vesta history --limit 5

  # Export as JSON
  vesta history --format json --output history.json`,
	RunE: showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "max records")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
	historyCmd.Flags().StringVarP(&historyFlags.output, "output", "o", "", "output file (default: stdout)")
}

func showHistory(cmd *cobra.Command, args []string) error {
	// Load config to locate the database
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if cfg.Database.Path == "" {
		return cli.NewConfigError("database.path", "no database configured (set DATABASE_URL or database.path)")
	}

	store, err := storage.NewSQLiteStore(&storage.SQLiteConfig{
		Path:         cfg.Database.Path,
		Name:         cfg.Database.Name,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		WALMode:      true,
		BusyTimeout:  cfg.Database.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("failed to open database: %w", err))
	}
	defer store.Close()

	ctx := context.Background()

	total, err := store.CountQuizzes(ctx)
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("count failed: %w", err))
	}

	records, err := store.LatestQuizzes(ctx, historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("query failed: %w", err))
	}

	// Output results
	output := os.Stdout
	if historyFlags.output != "" {
		output, err = os.Create(historyFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer output.Close()
	}

	if historyFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(output, map[string]any{
			"total_records": total,
			"records":       records,
		})
	}

	return outputHistoryText(output, records, total)
}

func outputHistoryText(output *os.File, records []*storage.QuizRecord, total int64) error {
	fmt.Fprintf(output, "Total archived items: %d\n", total)
	fmt.Fprintln(output)

	if len(records) == 0 {
		fmt.Fprintln(output, "No records found.")
		return nil
	}

	for i, record := range records {
		if i > 0 {
			fmt.Fprintln(output)
		}

		fmt.Fprintf(output, "Record ID: %s\n", record.ID)
		fmt.Fprintf(output, "Served At: %s\n", record.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(output, "Source: %s\n", record.Source)
		if record.Model != "" {
			fmt.Fprintf(output, "Model: %s\n", record.Model)
		}
		fmt.Fprintf(output, "Prompt: %s\n", record.Prompt)
		fmt.Fprintf(output, "Solution: %s\n", record.Solution)
		if record.LatencyMS > 0 {
			fmt.Fprintf(output, "Latency: %dms\n", record.LatencyMS)
		}
	}

	return nil
}
