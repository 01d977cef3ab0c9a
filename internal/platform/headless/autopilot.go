package headless

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Autopilot flaps whenever the bird is falling below the center of the next gap.
type Autopilot struct {
	cfg config.FlappyConfig
	// Margin is how far below the target the bird may sink before flapping.
	Margin float64
}

// NewAutopilot creates an autopilot for the given tuning.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg, Margin: cfg.Obstacles.Gap / 8}
}

// Target returns the height the autopilot steers the bird's center towards:
// the middle of the first gap the bird has not yet flown through, or the
// middle of the world when there is none.
func (a *Autopilot) Target(s flappy.Snapshot) float64 {
	for _, o := range s.Obstacles {
		if o.X+a.cfg.Obstacles.Width >= s.Player.X {
			return (o.GapTop + o.GapBottom) / 2
		}
	}
	return a.cfg.World.Height / 2
}

// Decide implements Pilot.
func (a *Autopilot) Decide(s flappy.Snapshot) core.Action {
	if s.Mode != flappy.ModePlaying {
		return core.ActionNone
	}
	center := s.Player.Y + a.cfg.Player.Size/2
	if s.Player.Velocity >= 0 && center > a.Target(s)+a.Margin {
		return core.ActionJump
	}
	return core.ActionNone
}

// Simulate plays one run under p using Step, without a timer, for at most
// maxTicks ticks. A game in menu or gameOver is started first.
func Simulate(g *flappy.Game, p Pilot, maxTicks int) flappy.Snapshot {
	if g.Mode() != flappy.ModePlaying {
		g.Handle(core.ActionJump)
	}

	in := core.NewInputFrame()
	for i := 0; i < maxTicks && g.Mode() == flappy.ModePlaying; i++ {
		in.Clear()
		if a := p.Decide(g.Snapshot()); a != core.ActionNone {
			in.Set(a)
		}
		g.Step(in)
	}
	return g.Snapshot()
}
