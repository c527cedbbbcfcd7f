package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

// runMenu shows the setup menu and starts the game with the choice.
func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size early for the menu layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sel, err := tui.RunSetupMenu(cfg.Themes, tui.SetupSelection{
		Difficulty: cfg.Difficulty,
		Theme:      cfg.Theme,
	}, width, height)
	if err != nil {
		return err
	}

	// User quit
	if sel == nil {
		return nil
	}

	flagDifficulty = string(sel.Difficulty)
	flagTheme = sel.Theme
	return runPlay(cmd, args)
}
