package flappy

import "github.com/vovakirdan/flappy-arcade/internal/config"

// groundLimit returns the largest Y the player may reach without touching the ground.
func groundLimit(cfg config.FlappyConfig) float64 {
	return cfg.World.Height - cfg.Player.Size - cfg.Physics.GroundMargin
}

// stepPlayer integrates one tick of vertical motion. It reports a ground hit
// without committing the fatal position.
func stepPlayer(p *Player, cfg config.FlappyConfig) (grounded bool) {
	v := p.Velocity + cfg.Physics.Gravity
	y := p.Y + v

	if y > groundLimit(cfg) {
		return true
	}

	// Touching the ceiling pushes the bird back down instead of pinning it.
	if y < 0 {
		y = 0
		v = cfg.Physics.CeilingUnstick
	}

	p.Y = y
	p.Velocity = v
	return false
}

// startPlayer returns the player at the beginning of a run.
func startPlayer(cfg config.FlappyConfig) Player {
	return Player{
		X:        cfg.Player.StartX,
		Y:        cfg.Player.StartY,
		Velocity: 0,
	}
}
