// flappy is a terminal Flappy Bird: play locally, over SSH, or let the
// autopilot fly.
//
// Usage:
//
//	flappy play      - Play in this terminal
//	flappy scores    - Show the leaderboard
//	flappy stats     - Show play statistics and achievements
//	flappy serve     - Start SSH server for remote play
//	flappy sim       - Run the autopilot
//	flappy config    - Print the effective or default tuning
//
// Global flags:
//
//	--config <path>     - Tuning YAML (default search: ~/.flappy/configs, ./configs)
//	--db <path>         - Scores database (default: ~/.flappy/scores.db)
//	--seed <value>      - RNG seed for reproducible pipes
//	--fps <rate>        - Override the simulation tick rate
//	--offline           - Do not read or write scores
//	--mock              - Use the built-in sample leaderboard instead of the database
//	--name <player>     - Name submitted with scores (default: $USER)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagFPS      int
	flagOffline  bool
	flagMock     bool
	flagName     string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Adventure - flap through pipes in your terminal",
	Long: `Flappy Adventure is a Flappy Bird clone for the terminal.

Available commands:
  play     - Play in this terminal
  scores   - Show the leaderboard
  stats    - Show play statistics and achievements
  serve    - Start SSH server for remote play
  sim      - Let the autopilot fly
  config   - Print tuning

Examples:
  flappy play
  flappy play --seed 42 --name ace
  flappy serve --ssh :2222
  flappy sim --runs 10`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation tick rate (0 = use config interval)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Play without a scoreboard")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "Use the sample leaderboard with simulated latency")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", os.Getenv("USER"), "Player name submitted with scores")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the root logger. fallback receives logs when no --log-file
// is given; the TUI passes io.Discard so the alt screen stays clean.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	return logger, closeFn, nil
}

// loadConfig resolves the tuning and applies --fps.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Clock.Interval = time.Second / time.Duration(flagFPS)
	}
	return cfg, nil
}

// openBoard returns the scoreboard selected by the flags, or nil when offline.
// A database that cannot be opened downgrades to offline with a warning.
func openBoard(cfg config.FlappyConfig, logger *log.Logger) (scoreboard.Service, func()) {
	switch {
	case flagOffline:
		return nil, func() {}
	case flagMock:
		return scoreboard.NewMock(scoreboard.WithSpeedCap(cfg.Speed.Max)), func() {}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing offline", "path", flagDBPath, "err", err)
		return nil, func() {}
	}
	return scoreboard.NewStoreService(store, cfg.Speed.Max), func() { store.Close() }
}

// exitf prints an error and exits like the rest of the commands do.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
