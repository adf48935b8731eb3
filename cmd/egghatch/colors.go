package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-hatch/internal/palette"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the egg colors",
	Long:  `Shows the named colors available for the egg, obstacles and backgrounds.`,
	Args:  cobra.NoArgs,
	Run:   runColors,
}

func runColors(cmd *cobra.Command, args []string) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range palette.All {
		maxNameLen = max(maxNameLen, len(c.Name))
	}

	fmt.Printf("  %-*s  %-7s\n", maxNameLen, "Name", "Hex")
	fmt.Printf("  %-*s  %-7s\n", maxNameLen, "----", "---")

	for _, c := range palette.All {
		hex := c.Color.Hex()
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, c.Name, hex, swatch)
	}

	fmt.Println()
	fmt.Printf("The egg starts %s; pick another on the color screen.\n", palette.Default.Name)
}
