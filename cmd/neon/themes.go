package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List colour themes",
	Long:  `Shows the themes defined in the configuration. Press T in game to cycle them.`,
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range cfg.Themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Println("Themes:")
	fmt.Println()
	fmt.Printf("    %-*s  %-9s  %-9s\n", maxNameLen, "Name", "Head", "Body")
	fmt.Printf("    %-*s  %-9s  %-9s\n", maxNameLen, "----", "----", "----")

	for _, t := range cfg.Themes {
		marker := "  "
		if t.Name == cfg.Theme {
			marker = "* "
		}
		line := fmt.Sprintf("  %s%-*s  %-9s  %-9s", marker, maxNameLen, t.Name, t.Primary, t.Secondary)
		if color {
			line += "  " + swatch(string(t.Primary)) + swatch(string(t.Secondary))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'neon play --theme <name>' to start with a theme.")
	return nil
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
