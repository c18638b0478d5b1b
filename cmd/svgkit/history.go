package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/svgkit/internal/storage"
)

var (
	flagLimit int
	flagClear string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved documents",
	Long: `Display the most recently saved documents in the gallery.

Examples:
  svgkit history
  svgkit history --limit 5
  svgkit history --clear plan`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of documents to show")
	historyCmd.Flags().StringVar(&flagClear, "clear", "", "Delete every saved document with this name")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening gallery: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear != "" {
		n, err := store.Clear(flagClear)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing documents: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d document(s) named %q.\n", n, flagClear)
		return
	}

	docs, err := store.List(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving documents: %v\n", err)
		os.Exit(1)
	}

	if len(docs) == 0 {
		fmt.Println("No documents saved yet.")
		fmt.Println()
		fmt.Println("Run 'svgkit render <scene.yaml> --save' to save one.")
		return
	}

	fmt.Println(historyTable(docs).View())
}

// historyTable lays out docs as a static table sized to the terminal.
func historyTable(docs []storage.Document) table.Model {
	nameWidth := 24
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		// ID, size, bytes and date columns plus cell padding take about 60 columns
		nameWidth = max(12, min(40, w-60))
	}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: 16},
		{Title: "Bytes", Width: 8},
		{Title: "Saved", Width: 16},
	}

	rows := make([]table.Row, len(docs))
	for i, d := range docs {
		rows[i] = table.Row{
			strconv.FormatInt(d.ID, 10),
			d.Name,
			d.Width + " x " + d.Height,
			strconv.Itoa(d.Bytes),
			d.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	// Height counts the header, which now has a bottom border
	t.SetHeight(len(rows) + lipgloss.Height(s.Header.Render("ID")))

	return t
}
