package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Rand is the random source used for obstacle generation.
// *math/rand.Rand satisfies it; tests script it.
type Rand interface {
	Float64() float64
}

// obstacleEngine moves, spawns, scores and collides pipes.
type obstacleEngine struct {
	cfg  config.FlappyConfig
	ramp config.SpeedRamp
	rng  Rand
}

func newObstacleEngine(cfg config.FlappyConfig, rng Rand) *obstacleEngine {
	return &obstacleEngine{
		cfg:  cfg,
		ramp: config.NewSpeedRamp(cfg.Speed),
		rng:  rng,
	}
}

// advance scrolls every pipe left and drops the ones fully off-screen.
func (e *obstacleEngine) advance(s *session) {
	dx := e.ramp.ScrollSpeed(s.speed)
	width := e.cfg.Obstacles.Width

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= dx
		if o.X+width > -e.cfg.Obstacles.OffscreenMargin {
			live = append(live, o)
		}
	}
	s.obstacles = live
}

// spawn appends a new pipe when the gate and spacing rules allow it.
// Before the first point the only way in is a rare random gate on an empty
// field, which gives each run a variable delay before the first pipe.
func (e *obstacleEngine) spawn(s *session) {
	n := len(s.obstacles)
	gate := s.score > 0 || (n == 0 && e.rng.Float64() < e.cfg.Obstacles.FirstSpawnChance)
	if !gate {
		return
	}
	if n > 0 && s.obstacles[n-1].X >= e.cfg.World.Width-e.cfg.Obstacles.SpawnSpacing {
		return
	}
	s.obstacles = append(s.obstacles, e.newObstacle(s))
}

func (e *obstacleEngine) newObstacle(s *session) Obstacle {
	lo, hi := e.cfg.Obstacles.GapTopRange(e.cfg.World.Height)
	top := lo + e.rng.Float64()*(hi-lo)

	s.nextID++
	return Obstacle{
		ID:        s.nextID,
		X:         e.cfg.World.Width + e.cfg.Obstacles.SpawnOffset,
		GapTop:    top,
		GapBottom: top + e.cfg.Obstacles.Gap,
	}
}

// score flags pipes the player has cleared and returns how many were new.
func (e *obstacleEngine) score(s *session) int {
	line := s.player.X - e.cfg.Leniency.Score
	passed := 0
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Passed || o.X+e.cfg.Obstacles.Width >= line {
			continue
		}
		o.Passed = true
		passed++

		s.score++
		if s.score > s.best {
			s.best = s.score
		}
		s.speed = e.ramp.Next(s.speed)
		s.topSpeed = math.Max(s.topSpeed, s.speed)
	}
	return passed
}

// hitbox returns the forgiving collision circle around the player's center.
func (e *obstacleEngine) hitbox(p Player) core.Circle {
	half := e.cfg.Player.Size / 2
	return core.Circle{X: p.X + half, Y: p.Y + half, R: e.cfg.Player.HitboxRadius}
}

// collides reports whether the player hits any pipe.
func (e *obstacleEngine) collides(s *session) bool {
	c := e.hitbox(s.player)
	for _, o := range s.obstacles {
		if e.hits(c, o) {
			return true
		}
	}
	return false
}

func (e *obstacleEngine) hits(c core.Circle, o Obstacle) bool {
	edge := e.cfg.Leniency.Edge
	if c.X <= o.X+edge || c.X >= o.X+e.cfg.Obstacles.Width-edge {
		return false
	}
	gap := e.cfg.Leniency.Gap
	return c.Top() < o.GapTop-gap || c.Bottom() > o.GapBottom+gap
}
