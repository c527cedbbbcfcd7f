// neon is a terminal Snake with a neon look and a global leaderboard.
//
// Usage:
//
//	neon                 - Pick difficulty and theme, then play
//	neon play            - Play in this terminal
//	neon scores          - Show the leaderboard
//	neon serve           - Start SSH server for remote play
//	neon themes          - List colour themes
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.arcade/configs, ./configs)
//	--db <path>         - Override the SQLite database path
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neon",
	Short: "Neon Snake - a retro snake in your terminal",
	Long: `Neon Snake is the terminal edition of the portfolio page's snake game.

Run without a command to pick difficulty and theme first.

Available commands:
  play     - Play in this terminal
  scores   - View the leaderboard and your game history
  serve    - Start SSH server for remote play
  themes   - List colour themes

Examples:
  neon
  neon play --difficulty hard --theme toxic
  neon scores -n 20
  neon serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
