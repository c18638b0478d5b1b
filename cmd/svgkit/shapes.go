package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/svgkit/internal/registry"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the shape kinds a scene may use",
	Long:  `Shows every shape kind registered for scene files.`,
	Run:   runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	shapes := registry.List()

	if len(shapes) == 0 {
		fmt.Println("No shape kinds available.")
		return
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Calculate column widths
	maxKindLen := len("Kind")
	for _, s := range shapes {
		maxKindLen = max(maxKindLen, len(s.Kind))
	}

	fmt.Println(titleStyle.Render("Shape kinds:"))
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Title")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----")
	for _, s := range shapes {
		fmt.Printf("  %s  %s\n", kindStyle.Width(maxKindLen).Render(s.Kind), s.Title)
	}

	fmt.Println()
	fmt.Println(helpStyle.Render("Use a kind as the 'kind:' of an entry under 'shapes:' in a scene file."))
}
