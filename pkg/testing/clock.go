package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation
// tests. It satisfies frame.Clock, reporting milliseconds from zero.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now float64
}

// NewFakeClock returns a FakeClock starting at time zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// Now returns the current fake time in milliseconds.
func (c *FakeClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += float64(d) / float64(time.Millisecond)
}

// Set sets the clock to an exact millisecond timestamp.
func (c *FakeClock) Set(ms float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ms
}
