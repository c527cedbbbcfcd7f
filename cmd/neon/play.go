package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/app"
	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

var (
	flagDifficulty string
	flagTheme      string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game screen.

Controls:
  Arrows/WASD   - Steer
  Enter/Space   - Start a new game
  T             - Next theme
  X             - Retro mode
  M             - Mute
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 140ms per step
  normal - tick_ms from the config (100ms by default)
  hard   - 70ms per step

Examples:
  neon play
  neon play --difficulty easy
  neon play --theme sunset --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Initial theme name")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

// applyPlayFlags overrides config values given on the command line.
func applyPlayFlags(cfg *config.Config) error {
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty = p
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyPlayFlags(&cfg); err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file.
	logFile, err := app.OpenLogFile(app.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := app.NewLogger(logFile, flagLogLevel, "neon")
	if err != nil {
		return err
	}

	settings := app.Settings(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if needW, needH := tui.MinSize(settings); w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d; the field needs %dx%d.\n", w, h, needW, needH)
		}
	}

	backend, err := app.OpenBackend(cfg.Leaderboard, flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: leaderboard unavailable: %v\n", err)
		logger.Warn("leaderboard unavailable", "error", err)
		backend = &app.Backend{}
	}
	defer backend.Close()

	cues, closeCues := app.NewCues(cfg.Audio.Enabled, logger)
	defer closeCues()

	logger.Info("starting", "difficulty", cfg.Difficulty, "period", settings.Period, "backend", cfg.Leaderboard.Backend)

	return tui.Run(tui.Options{
		Settings:   settings,
		Sink:       backend.Sink,
		Recorder:   backend.Recorder,
		BoardLimit: cfg.Leaderboard.Limit,
		Themes:     theme.NewSelector(cfg.Themes, cfg.Theme),
		Cues:       cues,
		Seed:       flagSeed,
		Logger:     logger,
	})
}
