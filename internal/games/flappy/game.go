// Package flappy implements the Flappy simulation: a single mutable session
// advanced by fixed-interval ticks, a mode state machine driven by two input
// actions, and a terminal renderer for the resulting snapshot.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ID is the identifier scores are stored under.
const ID = "flappy"

// Title is the display name.
const Title = "Flappy Adventure"

// Game owns the session and is the only thing that mutates it.
//
// Game is not safe for concurrent use. Hosts call Handle and Tick from one
// goroutine (the bubbletea update loop or the headless runner's select loop),
// so every call runs to completion before the next begins.
type Game struct {
	cfg       config.FlappyConfig
	s         session
	clock     *Clock
	engine    *obstacleEngine
	seededRNG bool // rng came from WithRand and must survive Reset
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source used for obstacle generation.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.engine.rng = r
		g.seededRNG = true
	}
}

// New creates a game in menu mode. It panics on invalid configuration;
// use config.LoadFlappy to surface those errors earlier.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}

	g := &Game{
		cfg:    cfg,
		clock:  NewClock(cfg.Clock.Interval),
		engine: newObstacleEngine(cfg, rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.s = session{
		mode:      ModeMenu,
		player:    startPlayer(cfg),
		obstacles: make([]Obstacle, 0, 8),
		speed:     g.engine.ramp.Baseline(),
		topSpeed:  g.engine.ramp.Baseline(),
	}
	return g
}

// NewDefault creates a game with the built-in tuning.
func NewDefault(opts ...Option) *Game {
	return New(config.DefaultFlappyConfig(), opts...)
}

// ID returns the identifier scores are stored under.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Clock returns the simulation clock. Hosts read it to schedule ticks.
func (g *Game) Clock() *Clock {
	return g.clock
}

// Reset returns to the menu with an empty field, keeping the best score.
// A non-zero seed reseeds the obstacle generator unless one was injected.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed != 0 && !g.seededRNG {
		g.engine.rng = rand.New(rand.NewSource(rc.Seed))
	}
	g.s.player = startPlayer(g.cfg)
	g.s.obstacles = g.s.obstacles[:0]
	g.s.score = 0
	g.s.speed = g.engine.ramp.Baseline()
	g.s.topSpeed = g.s.speed
	g.s.ticks = 0
	g.setMode(ModeMenu)
}

// SeedBest raises the best score, e.g. from a leaderboard. It never lowers it.
func (g *Game) SeedBest(best int) {
	if best > g.s.best {
		g.s.best = best
	}
}

// Handle applies a user action. Actions with no transition in the current
// mode are ignored; the return value reports whether one fired.
func (g *Game) Handle(a core.Action) bool {
	ev, ok := eventFor(a)
	if !ok {
		return false
	}
	return g.fire(ev)
}

// Tick advances the simulation by one interval if gen is the clock's current
// generation and the clock is running. It reports whether the tick ran.
func (g *Game) Tick(gen uint64) bool {
	if !g.clock.Accept(gen) {
		return false
	}
	g.tick()
	return true
}

// tick runs player physics, obstacle advance/spawn, scoring and collision,
// in that order. A ground hit ends the run before anything else moves.
func (g *Game) tick() {
	s := &g.s
	if stepPlayer(&s.player, g.cfg) {
		g.fire(eventCollision)
		return
	}
	s.ticks++

	g.engine.advance(s)
	g.engine.spawn(s)
	g.engine.score(s)

	if g.engine.collides(s) {
		g.fire(eventCollision)
	}
}

// Step applies the frame's actions and, if the game is then playing, runs one
// tick without consulting the clock generation. It drives the game without a
// timer: tests, the autopilot and determinism checks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Ordered() {
		g.Handle(a)
	}

	ticked := false
	if g.clock.Running() {
		g.tick()
		ticked = true
	}
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.s.mode
}

// Snapshot returns a copy of the session safe to keep and read.
func (g *Game) Snapshot() Snapshot {
	return g.s.snapshot(g.cfg.Clock.Interval)
}

// State returns the coarse status used by hosts.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.s.score,
		Best:     g.s.best,
		GameOver: g.s.mode == ModeGameOver,
		Paused:   g.s.mode == ModePaused,
		Playing:  g.s.mode == ModePlaying,
	}
}
