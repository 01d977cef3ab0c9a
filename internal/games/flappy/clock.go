package flappy

import "time"

// Clock gates the fixed-interval simulation ticks.
//
// The host owns the actual timer (a bubbletea tick command, a time.Ticker) and
// tags every scheduled tick with the generation it was scheduled under. Each
// start or stop bumps the generation, so a tick that was already in flight when
// the game left playing is rejected by Accept and never mutates state.
type Clock struct {
	interval time.Duration
	gen      uint64
	running  bool
}

// NewClock creates a stopped clock.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Interval returns the fixed tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether ticks are currently accepted.
func (c *Clock) Running() bool {
	return c.running
}

// Generation returns the generation hosts should tag new ticks with.
func (c *Clock) Generation() uint64 {
	return c.gen
}

// Accept reports whether a tick scheduled under gen may run now.
func (c *Clock) Accept(gen uint64) bool {
	return c.running && gen == c.gen
}

func (c *Clock) start() {
	c.gen++
	c.running = true
}

func (c *Clock) stop() {
	if !c.running {
		return
	}
	c.gen++
	c.running = false
}
