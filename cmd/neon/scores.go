package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/app"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagStats       bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores from the configured leaderboard.

Examples:
  neon scores
  neon scores -n 20
  neon scores --stats
  neon scores -i
  neon scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 0, "Number of entries (default: leaderboard.limit)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and game history in a table")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also print local game statistics")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every entry of the local sqlite leaderboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(os.Stderr, flagLogLevel, "neon")
	if err != nil {
		return err
	}

	backend, err := app.OpenBackend(cfg.Leaderboard, flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening leaderboard: %w", err)
	}
	defer backend.Close()

	if flagReset {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := backend.ResetScores(ctx); err != nil {
			if errors.Is(err, app.ErrNotLocal) {
				return fmt.Errorf("--reset needs the sqlite backend (configured: %s)", cfg.Leaderboard.Backend)
			}
			return fmt.Errorf("resetting scores: %w", err)
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		var history tui.History
		if store, err := backend.History(); err == nil {
			history = store
		}
		return tui.RunScoreboard(backend.Sink, history, width, height)
	}

	if backend.Sink == nil {
		fmt.Println("Leaderboard offline.")
		return nil
	}

	limit := flagScoresLimit
	if limit <= 0 {
		limit = cfg.Leaderboard.Limit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scores, err := backend.Sink.TopScores(ctx, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	// Display scores
	fmt.Println("GLOBAL LEADERBOARD")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores yet. Be the first!")
		fmt.Println()
		fmt.Println("Run 'neon play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
		fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "----", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-20s  %-6d  %s\n", i+1, entry.Name, entry.Score, dateStr)
		}
	}

	if !flagStats {
		return nil
	}

	store, err := backend.History()
	if errors.Is(err, app.ErrNoHistory) {
		fmt.Println()
		fmt.Println("No local game history for this backend.")
		return nil
	}

	st, err := store.GameStats(ctx)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	best, err := store.HighScore(ctx)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", st.Games)
	fmt.Printf("Best game:    %d\n", st.BestScore)
	fmt.Printf("Best entry:   %d\n", best)
	fmt.Printf("Average:      %.1f\n", st.AvgScore)
	fmt.Printf("Longest:      %d\n", st.Longest)
	fmt.Printf("Time played:  %s\n", st.TotalTime.Round(time.Second))
	return nil
}
