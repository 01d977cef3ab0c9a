package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// event is an input to the mode state machine.
type event int

const (
	eventTrigger   event = iota // jump / start
	eventPause                  // pause toggle
	eventRestart                // explicit restart
	eventCollision              // raised by the engine, never by input
)

func (e event) String() string {
	switch e {
	case eventTrigger:
		return "trigger"
	case eventPause:
		return "pause"
	case eventRestart:
		return "restart"
	case eventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

type transition func(g *Game)

// transitions is the complete table. A (mode, event) pair without an entry is
// ignored.
var transitions = map[Mode]map[event]transition{
	ModeMenu: {
		eventTrigger: (*Game).startRun,
	},
	ModePlaying: {
		eventTrigger:   (*Game).flap,
		eventPause:     (*Game).pause,
		eventCollision: (*Game).endRun,
	},
	ModePaused: {
		eventPause: (*Game).resume,
	},
	ModeGameOver: {
		eventTrigger: (*Game).startRun,
		eventRestart: (*Game).startRun,
	},
}

// eventFor maps a platform action to a state machine event.
func eventFor(a core.Action) (event, bool) {
	switch a {
	case core.ActionJump:
		return eventTrigger, true
	case core.ActionPause:
		return eventPause, true
	case core.ActionRestart:
		return eventRestart, true
	default:
		return 0, false
	}
}

// fire runs the transition for ev in the current mode, if there is one.
func (g *Game) fire(ev event) bool {
	t, ok := transitions[g.s.mode][ev]
	if !ok {
		return false
	}
	t(g)
	return true
}

// setMode switches mode and keeps the clock in step with it.
func (g *Game) setMode(m Mode) {
	g.s.mode = m
	if m == ModePlaying {
		g.clock.start()
	} else {
		g.clock.stop()
	}
}

func (g *Game) startRun() {
	g.s.player = startPlayer(g.cfg)
	g.s.obstacles = g.s.obstacles[:0]
	g.s.score = 0
	g.s.speed = g.engine.ramp.Baseline()
	g.s.topSpeed = g.s.speed
	g.s.ticks = 0
	g.setMode(ModePlaying)
}

func (g *Game) flap() {
	g.s.player.Velocity = g.cfg.Physics.JumpImpulse
}

func (g *Game) pause() {
	g.setMode(ModePaused)
}

func (g *Game) resume() {
	g.setMode(ModePlaying)
}

func (g *Game) endRun() {
	g.setMode(ModeGameOver)
}
