package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render/poll rate for hosts that need one (default 60)
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a host needs to drive its own chrome.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score seen this process
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
	Playing  bool // Whether the simulation clock is running
}

// StepResult is returned by Step after each deterministic tick.
type StepResult struct {
	State GameState
	// Ticked reports whether the simulation advanced during the step.
	Ticked bool
}
