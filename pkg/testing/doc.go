// Package testing provides fakes for deterministic animation tests.
//
// # Controlling Time
//
// FakeClock stands in for the scheduler's monotonic clock so frames can
// be processed at exact timestamps:
//
//	clock := motiontest.NewFakeClock()
//	sched := frame.NewScheduler(clock, nil)
//
//	sched.Schedule(frame.PhaseUpdate, task, frame.KeepAlive)
//	motiontest.Pump(clock, sched, 3, 16)
//
// # Driving Animations
//
// NewManualDriver returns a driver factory for animation transitions
// along with the handle that cranks it:
//
//	factory, driver := motiontest.NewManualDriver()
//	anim := animation.New(animation.Options[float64]{
//	    Keyframes:  animation.Values(0.0, 100.0),
//	    Transition: animation.Transition{Duration: 200 * time.Millisecond, Driver: factory},
//	})
//	driver.Frame(4, 50) // four 50ms frames
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
