package frame

// Driver advances an animation over time by invoking the tick it was
// built around. Start and Stop are idempotent from the animation's point
// of view: an animation acquires the driver on play and releases it on
// pause, stop, or completion.
type Driver interface {
	// Start begins delivering ticks.
	Start()
	// Stop ceases delivering ticks.
	Stop()
	// Now returns the driver's current time in milliseconds.
	Now() float64
}

// DriverFactory builds a Driver that invokes tick with the current
// timestamp in milliseconds on every frame. Animations accept a factory
// so tests can substitute a manual driver.
type DriverFactory func(tick func(timestamp float64)) Driver

// SchedulerDriver returns a DriverFactory whose drivers tick from the
// scheduler's update phase using a keep-alive task. This is the default
// driver for animations.
func SchedulerDriver(s *Scheduler) DriverFactory {
	return func(tick func(timestamp float64)) Driver {
		d := &schedulerDriver{sched: s}
		d.task = NewTask(func(data Data) {
			tick(data.Timestamp)
		})
		return d
	}
}

type schedulerDriver struct {
	sched *Scheduler
	task  *Task
}

func (d *schedulerDriver) Start() {
	d.sched.Schedule(PhaseUpdate, d.task, KeepAlive|Immediate)
}

func (d *schedulerDriver) Stop() {
	d.sched.Cancel(d.task)
}

func (d *schedulerDriver) Now() float64 {
	return d.sched.Now()
}
