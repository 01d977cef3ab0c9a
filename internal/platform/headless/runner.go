// Package headless drives a game without a terminal: in real time from an
// action channel, or as fast as possible under an autopilot.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Pilot picks an action after each tick. Returning ActionNone does nothing.
type Pilot interface {
	Decide(s flappy.Snapshot) core.Action
}

// Runner owns a game and is the only goroutine that touches it while Run is active.
type Runner struct {
	game   *flappy.Game
	pilot  Pilot
	logger *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithPilot lets p act after every tick.
func WithPilot(p Pilot) RunnerOption {
	return func(r *Runner) { r.pilot = p }
}

// WithLogger sets the logger used for run events.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner for game.
func NewRunner(game *flappy.Game, opts ...RunnerOption) *Runner {
	r := &Runner{game: game, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies actions and ticks the game at its clock interval until the run
// ends, ActionQuit arrives, or ctx is done. A ticker exists only while the
// clock runs and is restarted for every new generation.
//
// If actions is closed while the game is not playing, Run returns since
// nothing could advance it any further.
func (r *Runner) Run(ctx context.Context, actions <-chan core.Action) (flappy.Snapshot, error) {
	clock := r.game.Clock()

	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
		gen    uint64
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	// sync keeps the ticker in step with the clock.
	sync := func() {
		switch running := clock.Running(); {
		case running && ticker == nil:
			ticker = time.NewTicker(clock.Interval())
			tickC = ticker.C
			gen = clock.Generation()
		case running && gen != clock.Generation():
			ticker.Reset(clock.Interval())
			gen = clock.Generation()
		case !running && ticker != nil:
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}

	for {
		sync()
		if actions == nil && !clock.Running() {
			return r.game.Snapshot(), nil
		}

		select {
		case <-ctx.Done():
			return r.game.Snapshot(), ctx.Err()

		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			if a == core.ActionQuit {
				return r.game.Snapshot(), nil
			}
			if r.game.Handle(a) {
				r.logger.Debug("action", "action", a, "mode", r.game.Mode())
			}

		case <-tickC:
			if !r.game.Tick(gen) {
				continue
			}
			if r.game.Mode() == flappy.ModeGameOver {
				snap := r.game.Snapshot()
				r.logger.Info("run ended", "score", snap.Score, "ticks", snap.Ticks)
				return snap, nil
			}
			if r.pilot != nil {
				r.game.Handle(r.pilot.Decide(r.game.Snapshot()))
			}
		}
	}
}
