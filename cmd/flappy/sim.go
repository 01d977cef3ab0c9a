package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/headless"
	"github.com/vovakirdan/flappy-arcade/internal/scoreboard"
)

var (
	flagRuns     int
	flagRealtime bool
	flagMaxTicks int
	flagSubmit   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot fly",
	Long: `Run the autopilot for a number of runs and print the scores.

By default runs are stepped as fast as possible. With --realtime each run
ticks at the configured clock interval, the same way interactive play does.

Examples:
  flappy sim
  flappy sim --runs 20 --seed 7
  flappy sim --realtime --runs 1
  flappy sim --submit --name autopilot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the clock interval instead of stepping")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Stop a stepped run after this many ticks")
	simCmd.Flags().BoolVar(&flagSubmit, "submit", false, "Submit each run to the scoreboard")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if flagRuns < 1 {
		exitf("--runs must be at least 1")
	}

	var board scoreboard.Service
	if flagSubmit {
		var closeBoard func()
		board, closeBoard = openBoard(cfg, logger)
		defer closeBoard()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := flappy.New(cfg)
	pilot := headless.NewAutopilot(cfg)
	rc := core.DefaultConfig()

	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %s\n", "Run", "Score", "Ticks", "Time", "Top speed")
	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %s\n", "---", "-----", "-----", "----", "---------")

	best := 0
	for i := 0; i < flagRuns; i++ {
		rc.Seed = seed + int64(i)
		game.Reset(rc)

		var snap flappy.Snapshot
		if flagRealtime {
			snap, err = runRealtime(ctx, game, pilot, logger)
			if errors.Is(err, context.Canceled) {
				fmt.Println("Interrupted.")
				return
			}
		} else {
			snap = headless.Simulate(game, pilot, flagMaxTicks)
		}

		best = max(best, snap.Score)
		fmt.Printf("  %-4d  %-6d  %-7d  %-9s  %.2fx\n",
			i+1, snap.Score, snap.Ticks, snap.Elapsed.Round(time.Millisecond), snap.TopSpeed)

		if board != nil {
			submit(ctx, board, snap, logger)
		}
	}

	fmt.Println()
	fmt.Printf("Best score: %d\n", best)
}

// runRealtime plays one run on the headless runner, started by a single flap.
func runRealtime(ctx context.Context, game *flappy.Game, pilot headless.Pilot, logger *log.Logger) (flappy.Snapshot, error) {
	actions := make(chan core.Action, 1)
	actions <- core.ActionJump
	close(actions)

	r := headless.NewRunner(game, headless.WithPilot(pilot), headless.WithLogger(logger))
	return r.Run(ctx, actions)
}

func submit(ctx context.Context, board scoreboard.Service, snap flappy.Snapshot, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := board.SubmitScore(ctx, scoreboard.Submission{
		Score:      snap.Score,
		PlayerName: flagName,
		Duration:   snap.Elapsed,
		TopSpeed:   snap.TopSpeed,
	})
	if err != nil {
		logger.Warn("submit failed", "score", snap.Score, "err", err)
	}
}
