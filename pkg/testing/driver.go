package testing

import (
	"github.com/go-drift/motion/pkg/frame"
)

// ManualDriver is a frame.Driver cranked by hand. Each Advance grows an
// accumulated timestamp and, while the driver is started, invokes the
// tick with it. Advances while stopped move time without ticking, the
// same way a real frame source keeps running while nobody listens.
type ManualDriver struct {
	tick    func(timestamp float64)
	now     float64
	started bool
}

// NewManualDriver returns a frame.DriverFactory to pass into a
// transition, plus the handle used to crank the driver it builds.
func NewManualDriver() (frame.DriverFactory, *ManualDriver) {
	d := &ManualDriver{}
	factory := func(tick func(timestamp float64)) frame.Driver {
		d.tick = tick
		return d
	}
	return factory, d
}

// Start begins delivering ticks.
func (d *ManualDriver) Start() {
	d.started = true
}

// Stop halts tick delivery.
func (d *ManualDriver) Stop() {
	d.started = false
}

// Now returns the accumulated timestamp in milliseconds.
func (d *ManualDriver) Now() float64 {
	return d.now
}

// Started reports whether the driver is delivering ticks.
func (d *ManualDriver) Started() bool {
	return d.started
}

// Advance moves time forward by ms, ticking if started.
func (d *ManualDriver) Advance(ms float64) {
	d.now += ms
	if d.started && d.tick != nil {
		d.tick(d.now)
	}
}

// Frame advances n frames of step milliseconds each.
func (d *ManualDriver) Frame(n int, step float64) {
	for i := 0; i < n; i++ {
		d.Advance(step)
	}
}
