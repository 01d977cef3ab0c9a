// Package config provides YAML-based game configuration loading, validation
// and the speed ramp used by the obstacle engine.
package config

import "time"

// FlappyConfig contains all tuning for a Flappy run. Distances are in world
// units; the renderer scales the world onto whatever terminal it gets.
type FlappyConfig struct {
	World     WorldConfig     `yaml:"world"`
	Clock     ClockConfig     `yaml:"clock"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Leniency  LeniencyConfig  `yaml:"leniency"`
	Speed     SpeedRampConfig `yaml:"speed"`
}

// WorldConfig defines the simulated playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClockConfig defines the fixed simulation interval.
type ClockConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// PlayerConfig defines the bird.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Size         float64 `yaml:"size"`
	HitboxRadius float64 `yaml:"hitbox_radius"` // smaller than Size/2 on purpose
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`    // negative = up
	CeilingUnstick float64 `yaml:"ceiling_unstick"` // velocity after touching the ceiling
	GroundMargin   float64 `yaml:"ground_margin"`
}

// ObstacleConfig defines pipe geometry and the spawn policy.
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	Gap              float64 `yaml:"gap"`
	MinTop           float64 `yaml:"min_top"`       // smallest gap top
	BottomMargin     float64 `yaml:"bottom_margin"` // space kept below the gap
	SpawnOffset      float64 `yaml:"spawn_offset"`  // spawn x beyond the right edge
	SpawnSpacing     float64 `yaml:"spawn_spacing"`
	OffscreenMargin  float64 `yaml:"offscreen_margin"`
	FirstSpawnChance float64 `yaml:"first_spawn_chance"` // per-tick chance before the first point
}

// LeniencyConfig holds the forgiving margins applied to scoring and collisions.
type LeniencyConfig struct {
	Score float64 `yaml:"score"` // subtracted from the player x when scoring
	Edge  float64 `yaml:"edge"`  // inward margin on both pipe edges
	Gap   float64 `yaml:"gap"`   // outward margin on both gap edges
}

// SpeedRampConfig defines the linear difficulty multiplier.
type SpeedRampConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Baseline  float64 `yaml:"baseline"`
	Increment float64 `yaml:"increment"`
	Max       float64 `yaml:"max"`
}

// GapTopRange returns the bounds a new gap top is drawn from.
func (o ObstacleConfig) GapTopRange(worldHeight float64) (lo, hi float64) {
	return o.MinTop, worldHeight - o.Gap - o.BottomMargin
}

// MarshalYAML writes the interval as a duration string such as "25ms".
func (c ClockConfig) MarshalYAML() (any, error) {
	return struct {
		Interval string `yaml:"interval"`
	}{c.Interval.String()}, nil
}
