package testing

import (
	"time"

	"github.com/go-drift/motion/pkg/frame"
)

// Pump advances the clock and processes a frame, repeated for the given
// number of frames with step milliseconds between them.
func Pump(clock *FakeClock, s *frame.Scheduler, frames int, step float64) {
	for i := 0; i < frames; i++ {
		clock.Advance(time.Duration(step * float64(time.Millisecond)))
		s.ProcessFrame()
	}
}
