package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/svgkit/internal/storage"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write the latest saved document",
	Long: `Write the most recently saved document with the given name to stdout
or to a file.

Examples:
  svgkit export plan > plan.svg
  svgkit export plan -o plan.svg`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write the document to this file")
}

func runExport(cmd *cobra.Command, args []string) {
	name := args[0]
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	doc, err := store.Latest(name)
	if errors.Is(err, storage.ErrNotFound) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: no saved document named %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'svgkit history' to see saved documents.")
		os.Exit(1)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving document: %v\n", err)
		os.Exit(1)
	}

	if flagExportOutput == "" {
		os.Stdout.Write(doc.SVG)
		return
	}
	if err := os.WriteFile(flagExportOutput, doc.SVG, 0o644); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagExportOutput, err)
		os.Exit(1)
	}
	newLogger().Info("exported document", "name", name, "id", doc.ID, "path", flagExportOutput)
}
