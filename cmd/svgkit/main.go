// svgkit renders YAML scene files to SVG 1.1 documents and keeps a local
// gallery of saved renderings.
//
// Usage:
//
//	svgkit render <scene.yaml>   - Render a scene to SVG
//	svgkit shapes                - List shape kinds usable in scenes
//	svgkit history               - Show saved documents
//	svgkit export <name>         - Write the latest saved document
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.svgkit/config.yaml)
//	--db <path>      - Gallery database (default: from config)
//	--verbose        - Log debug output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/svgkit/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "svgkit",
	Short: "svgkit - Render YAML scenes to SVG",
	Long: `svgkit turns small YAML scene descriptions into SVG 1.1 documents
and keeps the ones you save in a local gallery.

Available commands:
  render   - Render a scene file
  shapes   - Show the shape kinds a scene may use
  history  - Show saved documents
  export   - Write a saved document to a file

Examples:
  svgkit render plan.yaml -o plan.svg
  svgkit render plan.yaml --unit mm --save
  svgkit history --limit 5
  svgkit export plan -o plan.svg`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to gallery database (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig loads configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath returns the gallery database path, preferring the --db flag.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "svgkit",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
