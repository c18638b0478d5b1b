package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/svgkit/internal/scene"
	"github.com/vovakirdan/svgkit/internal/storage"
)

var (
	flagOutput string
	flagSave   bool
	flagPretty bool
	flagUnit   string
)

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Render a scene file to SVG",
	Long: `Render a YAML scene to an SVG 1.1 document.

The document goes to stdout unless --output is given. Output to a terminal
is pretty-printed unless --pretty=false.

Examples:
  svgkit render plan.yaml > plan.svg
  svgkit render plan.yaml -o plan.svg --unit mm
  svgkit render plan.yaml --save`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the document to this file")
	renderCmd.Flags().BoolVar(&flagSave, "save", false, "Save the document to the gallery")
	renderCmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent the document")
	renderCmd.Flags().StringVar(&flagUnit, "unit", "", "Unit suffix for coordinates, e.g. px or mm")
}

func runRender(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger()

	s, err := scene.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	toTerminal := flagOutput == "" && term.IsTerminal(int(os.Stdout.Fd()))

	var opts scene.Options
	if cmd.Flags().Changed("unit") {
		opts.Unit = &flagUnit
	}
	if cmd.Flags().Changed("pretty") {
		opts.Pretty = &flagPretty
	} else if toTerminal {
		pretty := true
		opts.Pretty = &pretty
	}

	doc, err := scene.NewRenderer(cfg, logger).Render(s, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", args[0], err)
		os.Exit(1)
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, doc.SVG, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOutput, err)
			os.Exit(1)
		}
		logger.Info("wrote document", "path", flagOutput, "bytes", len(doc.SVG))
	} else {
		os.Stdout.Write(doc.SVG)
		if toTerminal {
			fmt.Println()
		}
	}

	if !flagSave {
		return
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveDocument(doc.Name, doc.Width, doc.Height, doc.SVG)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving document: %v\n", err)
		os.Exit(1)
	}
	logger.Info("saved document", "name", doc.Name, "id", id)
}
