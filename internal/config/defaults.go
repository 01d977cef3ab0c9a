package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning. It mirrors defaults/flappy.yaml
// and is the last fallback when no YAML can be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Clock: ClockConfig{
			Interval: 25 * time.Millisecond,
		},
		Player: PlayerConfig{
			StartX:       150,
			StartY:       200,
			Size:         30,
			HitboxRadius: 10,
		},
		Physics: PhysicsConfig{
			Gravity:        0.4,
			JumpImpulse:    -8,
			CeilingUnstick: 1,
			GroundMargin:   10,
		},
		Obstacles: ObstacleConfig{
			Width:            60,
			Gap:              220,
			MinTop:           80,
			BottomMargin:     80,
			SpawnOffset:      100,
			SpawnSpacing:     350,
			OffscreenMargin:  50,
			FirstSpawnChance: 0.01,
		},
		Leniency: LeniencyConfig{
			Score: 10,
			Edge:  10,
			Gap:   20,
		},
		Speed: SpeedRampConfig{
			BaseSpeed: 2,
			Baseline:  1.0,
			Increment: 0.05,
			Max:       2.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
