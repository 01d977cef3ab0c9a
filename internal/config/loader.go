package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy configuration and validates it.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/flappy.yaml"}
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Files on the search path must validate too.
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs the
// keys it changes, then validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML that Parse reads back unchanged.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects tuning that cannot produce a playable run.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	if c.Clock.Interval <= 0 {
		errs = append(errs, fmt.Errorf("clock.interval must be positive, got %v", c.Clock.Interval))
	}
	positive("player.size", c.Player.Size)
	positive("player.hitbox_radius", c.Player.HitboxRadius)
	nonNegative("physics.gravity", c.Physics.Gravity)
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse))
	}
	positive("physics.ceiling_unstick", c.Physics.CeilingUnstick)
	nonNegative("physics.ground_margin", c.Physics.GroundMargin)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.gap", c.Obstacles.Gap)
	nonNegative("obstacles.min_top", c.Obstacles.MinTop)
	nonNegative("obstacles.bottom_margin", c.Obstacles.BottomMargin)
	positive("obstacles.spawn_spacing", c.Obstacles.SpawnSpacing)
	nonNegative("obstacles.offscreen_margin", c.Obstacles.OffscreenMargin)
	if p := c.Obstacles.FirstSpawnChance; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("obstacles.first_spawn_chance must be within [0, 1], got %v", p))
	}
	if lo, hi := c.Obstacles.GapTopRange(c.World.Height); hi < lo {
		errs = append(errs, fmt.Errorf("obstacles.gap %v does not fit a %v high world with margins %v/%v",
			c.Obstacles.Gap, c.World.Height, c.Obstacles.MinTop, c.Obstacles.BottomMargin))
	}
	nonNegative("leniency.score", c.Leniency.Score)
	nonNegative("leniency.edge", c.Leniency.Edge)
	nonNegative("leniency.gap", c.Leniency.Gap)
	positive("speed.base_speed", c.Speed.BaseSpeed)
	positive("speed.baseline", c.Speed.Baseline)
	nonNegative("speed.increment", c.Speed.Increment)
	if c.Speed.Max < c.Speed.Baseline {
		errs = append(errs, fmt.Errorf("speed.max %v is below speed.baseline %v", c.Speed.Max, c.Speed.Baseline))
	}
	if c.Player.StartX < 0 || c.Player.StartX+c.Player.Size > c.World.Width {
		errs = append(errs, fmt.Errorf("player.start_x %v is outside the world", c.Player.StartX))
	}
	if c.Player.StartY < 0 || c.Player.StartY > c.World.Height-c.Player.Size-c.Physics.GroundMargin {
		errs = append(errs, fmt.Errorf("player.start_y %v is outside the flyable area", c.Player.StartY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
