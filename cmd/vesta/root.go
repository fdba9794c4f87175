package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vesta",
	Short: "Vesta - trivia game backend",
	Long: `Vesta is the HTTP backend for a local trivia game.

It serves a quiz endpoint backed by a generative-language model with a
deterministic local fallback, a database connectivity probe for deployment
debugging, and greeting endpoints the frontend uses as liveness checks.

Every quiz endpoint failure degrades to a built-in question pool, so the
game keeps working without an API key, without a database, and without
network access to the model.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
