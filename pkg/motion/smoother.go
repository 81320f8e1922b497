package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/go-drift/motion/pkg/frame"
)

// smootherRest is the position and velocity epsilon below which the
// smoother pins to its target and stops ticking.
const smootherRest = 0.01

// SmootherConfig tunes SpringSmoother.
type SmootherConfig struct {
	// FPS is the nominal simulation rate fed to the spring integrator.
	// Defaults to the loop's 60.
	FPS int
	// AngularFrequency sets how fast the smoothed value chases its
	// target. Defaults to 6.
	AngularFrequency float64
	// DampingRatio sets how oscillation decays (1 = no overshoot).
	// Defaults to 0.8.
	DampingRatio float64
	// Scheduler drives the per-frame updates. Defaults to the shared
	// loop's scheduler.
	Scheduler *frame.Scheduler
}

// SpringSmoother builds a passive effect that eases a value toward each
// Set target with spring physics instead of jumping. The first Set
// seeds the resting position; later Sets re-target the spring, which
// ticks on the scheduler's update phase until it settles. Attach the
// returned effect and stop function with Value.Attach.
func SpringSmoother(cfg SmootherConfig) (PassiveEffect[float64], func()) {
	if cfg.FPS <= 0 {
		cfg.FPS = frame.DefaultFPS
	}
	if cfg.AngularFrequency == 0 {
		cfg.AngularFrequency = 6
	}
	if cfg.DampingRatio == 0 {
		cfg.DampingRatio = 0.8
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = frame.Default().Scheduler()
	}

	spring := harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency, cfg.DampingRatio)

	var (
		task             *frame.Task
		pos, vel, target float64
		seeded, active   bool
		apply            func(float64)
	)

	halt := func() {
		if task != nil {
			sched.Cancel(task)
			task = nil
		}
		active = false
		vel = 0
	}

	// Stopping resets the smoother: the next Set seeds a fresh resting
	// position instead of easing from wherever the spring was halted.
	stop := func() {
		halt()
		seeded = false
	}

	effect := func(v float64, set func(float64)) {
		target = v
		apply = set
		if !seeded {
			seeded = true
			pos = v
			set(pos)
			return
		}
		if active {
			return
		}
		active = true
		task = frame.NewTask(func(frame.Data) {
			pos, vel = spring.Update(pos, vel, target)
			if math.Abs(pos-target) < smootherRest && math.Abs(vel) < smootherRest {
				pos = target
				apply(pos)
				halt()
				return
			}
			apply(pos)
		})
		sched.Schedule(frame.PhaseUpdate, task, frame.KeepAlive)
	}

	return effect, stop
}
