package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// scriptedRand replays vals in order and then repeats the last one.
// With no values it returns 0.99, which never passes the first-spawn gate.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.99
	}
	if r.i >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func newTestGame(t *testing.T, vals ...float64) *Game {
	t.Helper()
	return NewDefault(WithRand(&scriptedRand{vals: vals}))
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	if !g.Handle(core.ActionJump) {
		t.Fatalf("trigger should start a run from %s", g.Mode())
	}
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %s, expected playing", g.Mode())
	}
}

func step(g *Game) core.StepResult {
	return g.Step(core.NewInputFrame())
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}
