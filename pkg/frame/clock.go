package frame

import "time"

// Clock provides monotonic time for a scheduler, in milliseconds. The
// epoch is arbitrary. The default implementation uses the system
// monotonic clock; tests inject a fake clock to control frame timing
// deterministically.
type Clock interface {
	Now() float64
}

// systemClock measures milliseconds since its creation using the system
// monotonic clock.
type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock backed by the system monotonic clock.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
