package flappy

import "time"

// Mode is the high-level state of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Player is the bird. X and Y are the top-left of its sprite box in world units.
type Player struct {
	X        float64
	Y        float64
	Velocity float64 // positive = down
}

// Obstacle is a pipe pair with a fixed gap between GapTop and GapBottom.
type Obstacle struct {
	ID        uint64
	X         float64 // left edge
	GapTop    float64 // bottom of the upper pipe
	GapBottom float64 // top of the lower pipe
	Passed    bool    // set once, when the player clears the pipe
}

// session is the single mutable aggregate. Only Game methods touch it.
type session struct {
	mode      Mode
	player    Player
	obstacles []Obstacle // oldest first
	score     int
	best      int
	speed     float64 // difficulty multiplier
	topSpeed  float64 // highest multiplier reached this run
	ticks     int
	nextID    uint64
}

// Snapshot is a read-only copy of the session for renderers and hosts.
type Snapshot struct {
	Mode      Mode
	Player    Player
	Obstacles []Obstacle
	Score     int
	Best      int
	Speed     float64
	TopSpeed  float64
	Ticks     int
	Elapsed   time.Duration // simulated run time
}

func (s *session) snapshot(interval time.Duration) Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)
	return Snapshot{
		Mode:      s.mode,
		Player:    s.player,
		Obstacles: obstacles,
		Score:     s.score,
		Best:      s.best,
		Speed:     s.speed,
		TopSpeed:  s.topSpeed,
		Ticks:     s.ticks,
		Elapsed:   time.Duration(s.ticks) * interval,
	}
}
