package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/app"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores go to the configured
leaderboard, so all players share it. Sound cues are off for remote
sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/neon_host_key

Examples:
  neon serve                           # Listen on :23234 with auto-generated key
  neon serve --ssh :2222               # Listen on port 2222
  neon serve --host-key ./my_host_key  # Use specific host key
  neon serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(os.Stderr, flagLogLevel, "neon-ssh")
	if err != nil {
		return err
	}

	backend, err := app.OpenBackend(cfg.Leaderboard, flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening leaderboard: %w", err)
	}
	defer backend.Close()

	settings := app.Settings(cfg)
	if flagSeed != 0 {
		logger.Warn("--seed is ignored by the SSH server")
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Settings:    settings,
		Themes:      cfg.Themes,
		Theme:       cfg.Theme,
		Sink:        backend.Sink,
		Recorder:    backend.Recorder,
		BoardLimit:  cfg.Leaderboard.Limit,
	}

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting neon SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
