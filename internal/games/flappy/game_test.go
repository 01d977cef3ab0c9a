package flappy

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestNewStartsInMenu(t *testing.T) {
	g := NewDefault()
	if g.Mode() != ModeMenu {
		t.Errorf("mode = %s, expected menu", g.Mode())
	}
	if g.Clock().Running() {
		t.Error("clock should not run in menu")
	}
	if g.ID() != "flappy" || g.Title() == "" {
		t.Errorf("id/title = %q/%q", g.ID(), g.Title())
	}
	if res := step(g); res.Ticked {
		t.Error("Step should not tick in menu")
	}
}

func TestNewPanicsOnInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.Gap = 0

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid config")
		}
	}()
	New(cfg)
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := NewDefault(WithRand(rand.New(rand.NewSource(seed))))
		g.Handle(core.ActionJump)
		g.s.score = 1 // open the spawn gate so pipes appear at once
		for i := 0; i < 400 && g.Mode() == ModePlaying; i++ {
			in := core.NewInputFrame()
			if i%12 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
	if len(a.Obstacles) == 0 && a.Ticks > 0 {
		t.Error("expected pipes on the field")
	}
}

func TestResetSeedIsDeterministic(t *testing.T) {
	rc := core.DefaultConfig()
	rc.Seed = 7

	firstGap := func() float64 {
		g := NewDefault()
		g.Reset(rc)
		g.Handle(core.ActionJump)
		g.s.score = 1
		step(g)
		return g.Snapshot().Obstacles[0].GapTop
	}
	if a, b := firstGap(), firstGap(); a != b {
		t.Errorf("gap tops differ with the same seed: %v vs %v", a, b)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 0, 0.5)
	startPlaying(t, g)
	step(g)

	snap := g.Snapshot()
	snap.Obstacles[0].X = -1000
	snap.Player.Y = -1000

	again := g.Snapshot()
	if again.Obstacles[0].X == -1000 || again.Player.Y == -1000 {
		t.Error("mutating a snapshot leaked into the session")
	}
}

func TestElapsedFollowsTicks(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	for i := 0; i < 40; i++ {
		step(g)
	}
	snap := g.Snapshot()
	if snap.Ticks != 40 {
		t.Fatalf("ticks = %d, expected 40", snap.Ticks)
	}
	if want := 40 * 25 * time.Millisecond; snap.Elapsed != want {
		t.Errorf("elapsed = %v, expected %v", snap.Elapsed, want)
	}
}

func TestStateReflectsMode(t *testing.T) {
	g := newTestGame(t)
	if s := g.State(); s.Playing || s.Paused || s.GameOver {
		t.Errorf("menu state = %+v", s)
	}
	driveTo(t, g, ModePaused)
	if s := g.State(); !s.Paused || s.Playing {
		t.Errorf("paused state = %+v", s)
	}
	g.Handle(core.ActionPause)
	if s := g.State(); !s.Playing {
		t.Errorf("playing state = %+v", s)
	}
}

func TestStepOrdersPauseBeforeJump(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionPause)
	res := g.Step(in)

	// Pause lands first, so the jump is ignored in paused mode.
	if g.Mode() != ModePaused || res.Ticked {
		t.Errorf("mode = %s ticked = %v, expected paused without a tick", g.Mode(), res.Ticked)
	}
	if v := g.Snapshot().Player.Velocity; v != 0 {
		t.Errorf("velocity = %v, jump should have been ignored", v)
	}
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(60, 20)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Ready to Fly?") {
		t.Errorf("menu overlay missing:\n%s", out)
	}
	if !strings.Contains(scr.Row(19), string(GroundChar)) {
		t.Errorf("ground missing on last row: %q", scr.Row(19))
	}
	if strings.ContainsRune(out, PlayerChar) {
		t.Error("player should not be drawn in menu")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	g.s.obstacles = append(g.s.obstacles, Obstacle{ID: 1, X: 300, GapTop: 100, GapBottom: 320})
	scr := core.NewScreen(60, 20)
	g.Render(scr)

	out := scr.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Errorf("player missing:\n%s", out)
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Errorf("pipe missing:\n%s", out)
	}
	if strings.Contains(out, "PAUSED") || strings.Contains(out, "Game Over!") {
		t.Error("no overlay expected while playing")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		snap  Snapshot
		want  []string
		avoid []string
	}{
		{
			name: "paused",
			snap: Snapshot{Mode: ModePaused},
			want: []string{"PAUSED"},
		},
		{
			name:  "game over",
			snap:  Snapshot{Mode: ModeGameOver, Score: 3, Best: 9},
			want:  []string{"Game Over!", "Final Score: 3"},
			avoid: []string{"New High Score!"},
		},
		{
			name: "new high score",
			snap: Snapshot{Mode: ModeGameOver, Score: 9, Best: 9},
			want: []string{"Game Over!", "New High Score!"},
		},
		{
			name:  "zero is never a record",
			snap:  Snapshot{Mode: ModeGameOver},
			avoid: []string{"New High Score!"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scr := core.NewScreen(60, 20)
			RenderSnapshot(scr, tc.snap, 400, 600, 60, 30)
			out := scr.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in:\n%s", w, out)
				}
			}
			for _, a := range tc.avoid {
				if strings.Contains(out, a) {
					t.Errorf("unexpected %q in:\n%s", a, out)
				}
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	scr := core.NewScreen(2, 2)
	RenderSnapshot(scr, Snapshot{Mode: ModeGameOver}, 400, 600, 60, 30)
	if strings.TrimSpace(scr.String()) != "" {
		t.Errorf("tiny screen should stay blank, got %q", scr.String())
	}
}
