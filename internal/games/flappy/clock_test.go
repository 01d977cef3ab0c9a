package flappy

import (
	"testing"
	"time"
)

func TestClockGenerations(t *testing.T) {
	c := NewClock(25 * time.Millisecond)
	if c.Running() || c.Accept(c.Generation()) {
		t.Fatal("new clock should be stopped")
	}

	c.start()
	first := c.Generation()
	if !c.Accept(first) {
		t.Fatal("running clock should accept its own generation")
	}

	c.stop()
	if c.Accept(first) {
		t.Error("stopped clock accepted a tick")
	}
	stopped := c.Generation()
	c.stop()
	if c.Generation() != stopped {
		t.Error("stopping a stopped clock should not bump the generation")
	}

	c.start()
	if c.Accept(first) {
		t.Error("restarted clock accepted a tick from an earlier run")
	}
	if !c.Accept(c.Generation()) {
		t.Error("restarted clock should accept its new generation")
	}
	if c.Interval() != 25*time.Millisecond {
		t.Errorf("interval = %v", c.Interval())
	}
}
