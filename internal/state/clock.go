package state

import (
	"sync"
	"time"
)

// Clock reports how long the application has been running.
type Clock interface {
	Elapsed() time.Duration
}

type wallClock struct {
	start time.Time
}

// NewClock returns a Clock that starts counting now.
func NewClock() Clock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += d
}

// Set jumps the clock to d.
func (c *ManualClock) Set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = d
}

func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
