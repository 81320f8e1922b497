package frame

import (
	"math"

	"github.com/petermattis/goid"

	"github.com/go-drift/motion/pkg/errors"
)

const (
	// maxElapsed caps the delta reported for one frame. After a stall
	// (background tab, debugger, long GC pause) animations advance by at
	// most this much rather than jumping to completion.
	maxElapsed = 40.0

	// defaultElapsed is the delta reported for the first frame after a
	// wake, when no previous frame exists to measure against.
	defaultElapsed = 1000.0 / 60.0
)

// Scheduler batches scheduled tasks into ordered phases and runs them
// once per frame. It is not safe for concurrent use: all methods must be
// called from the goroutine that calls ProcessFrame. See the package
// documentation for the phase model.
type Scheduler struct {
	steps [numPhases]*step
	data  Data
	clock Clock

	// requestFrame is invoked whenever work is scheduled while no frame
	// is pending. Drivers use it to wake their loop.
	requestFrame func()

	runNextFrame      bool
	useDefaultElapsed bool
	flushNextPass     bool

	// goroutineID pins the driving goroutine when debug mode is on.
	goroutineID int64
}

// NewScheduler creates a scheduler reading time from clock. requestFrame
// may be nil; when set it is invoked each time scheduled work requires a
// new frame. A nil clock defaults to the system clock.
func NewScheduler(clock Clock, requestFrame func()) *Scheduler {
	if clock == nil {
		clock = NewSystemClock()
	}
	s := &Scheduler{
		clock:             clock,
		requestFrame:      requestFrame,
		useDefaultElapsed: true,
	}
	for i := range s.steps {
		s.steps[i] = newStep(s.flagRunNextFrame)
	}
	return s
}

func (s *Scheduler) flagRunNextFrame() {
	s.runNextFrame = true
}

// wake flags that a frame is needed and notifies the driver unless a
// pass is already executing. The next frame reports the default delta:
// after an idle period the gap since the last processed frame is not a
// meaningful elapsed time.
func (s *Scheduler) wake() {
	s.runNextFrame = true
	s.useDefaultElapsed = true
	if !s.data.IsProcessing && s.requestFrame != nil {
		s.requestFrame()
	}
}

// Schedule enqueues the task to run during phase on the next frame, or
// within the current pass for Immediate tasks whose phase is executing.
// Scheduling an already-pending task is a no-op, so callers may schedule
// unconditionally. Returns the task for chaining.
func (s *Scheduler) Schedule(phase Phase, task *Task, flags Flag) *Task {
	if task == nil || task.fn == nil {
		return task
	}
	if !s.runNextFrame {
		s.wake()
	}
	s.steps[phase].schedule(task, flags&KeepAlive != 0, flags&Immediate != 0)
	return task
}

// Cancel removes the task from every phase's pending queue and clears its
// keep-alive status. It has no effect on the pass currently executing.
// Cancelling an unscheduled task is a no-op.
func (s *Scheduler) Cancel(task *Task) {
	if task == nil {
		return
	}
	for _, st := range s.steps {
		st.cancel(task)
	}
}

// ProcessFrame executes one frame pass: each phase in order, running the
// tasks scheduled for it. Deltas are clamped to [1, 40] milliseconds; the
// first frame after a wake reports 1000/60.
//
// ProcessFrame is non-reentrant. A nested call (from within a task) does
// not recurse: it flags exactly one extra synchronous pass, which runs
// immediately after the current one completes. Requests are never
// silently dropped.
func (s *Scheduler) ProcessFrame() {
	if errors.Debug {
		id := goid.Get()
		if s.goroutineID == 0 {
			s.goroutineID = id
		}
		errors.Invariant(id == s.goroutineID, "frame.ProcessFrame",
			"frame processed from goroutine %d, expected %d", id, s.goroutineID)
	}
	if s.data.IsProcessing {
		s.flushNextPass = true
		return
	}
	s.processPass()
	for s.flushNextPass {
		s.flushNextPass = false
		s.processPass()
	}
}

func (s *Scheduler) processPass() {
	timestamp := s.clock.Now()
	s.runNextFrame = false

	if s.useDefaultElapsed {
		s.data.Delta = defaultElapsed
	} else {
		s.data.Delta = math.Max(math.Min(timestamp-s.data.Timestamp, maxElapsed), 1)
	}
	s.data.Timestamp = timestamp
	s.data.IsProcessing = true

	for _, st := range s.steps {
		st.process(s.data)
	}

	s.data.IsProcessing = false

	if s.runNextFrame {
		s.useDefaultElapsed = false
		if s.requestFrame != nil {
			s.requestFrame()
		}
	}
}

// State returns a copy of the current frame data.
func (s *Scheduler) State() Data {
	return s.data
}

// Now returns the scheduler's current time in milliseconds. During a
// pass it returns the pass timestamp, so every callback in a frame
// observes the same time; otherwise it reads the clock.
func (s *Scheduler) Now() float64 {
	if s.data.IsProcessing {
		return s.data.Timestamp
	}
	return s.clock.Now()
}

// HasPendingFrame reports whether scheduled work is waiting for a frame.
func (s *Scheduler) HasPendingFrame() bool {
	return s.runNextFrame
}
