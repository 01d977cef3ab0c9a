package config

import "math"

// SpeedRamp is the linear difficulty multiplier applied to the base scroll speed.
// It starts at Baseline, grows by Increment per point and never passes Max.
type SpeedRamp struct {
	cfg SpeedRampConfig
}

// NewSpeedRamp creates a ramp from config.
func NewSpeedRamp(cfg SpeedRampConfig) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// Baseline returns the multiplier at the start of a run.
func (r SpeedRamp) Baseline() float64 {
	return r.cfg.Baseline
}

// Max returns the multiplier cap.
func (r SpeedRamp) Max() float64 {
	return r.cfg.Max
}

// Next returns the multiplier after one more point was scored.
func (r SpeedRamp) Next(current float64) float64 {
	return math.Min(current+r.cfg.Increment, r.cfg.Max)
}

// ScrollSpeed returns how far obstacles move per tick at the given multiplier.
func (r SpeedRamp) ScrollSpeed(multiplier float64) float64 {
	return r.cfg.BaseSpeed * multiplier
}

// AtCap reports whether the multiplier reached its cap, allowing for
// accumulated float error from repeated increments.
func (r SpeedRamp) AtCap(multiplier float64) bool {
	return multiplier >= r.cfg.Max-1e-9
}
