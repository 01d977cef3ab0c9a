package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/click  - Start, then flap
  P/Esc             - Pause and resume
  R                 - Restart after game over
  Tab               - Leaderboard, stats and achievements
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --mock --name ace
  flappy play --config ./hard.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	rc.Seed = flagSeed

	logger.Info("starting game", "seed", flagSeed, "interval", cfg.Clock.Interval, "online", board != nil)
	err = tui.Run(flappy.New(cfg), tui.Options{
		Runtime: rc,
		Board:   board,
		Player:  flagName,
		Logger:  logger,
	})
	if err != nil {
		closeBoard()
		exitf("running game: %v", err)
	}
}
