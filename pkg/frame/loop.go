package frame

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// DefaultFPS is the frame rate a Loop targets unless configured otherwise.
const DefaultFPS = 60

// Loop owns a Scheduler and drives it from a dedicated goroutine. The
// loop parks when no work is pending and wakes when something is
// scheduled; it never polls while idle.
//
// The loop goroutine is the scheduler's driving goroutine. Code running
// on other goroutines must enter through Dispatch rather than calling
// scheduler methods directly.
type Loop struct {
	sched    *Scheduler
	interval time.Duration

	mu       sync.Mutex
	dispatch []func()
	started  bool

	pending  atomic.Bool
	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a frame loop targeting fps frames per second, reading
// time from the system clock. Values of fps <= 0 fall back to DefaultFPS.
// The loop does not run until Start is called.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	l := &Loop{
		interval: time.Second / time.Duration(fps),
		wakeCh:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
	l.sched = NewScheduler(NewSystemClock(), l.requestFrame)
	return l
}

// Scheduler returns the scheduler this loop drives.
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// requestFrame marks a frame as needed and wakes the loop goroutine if it
// is parked. Called by the scheduler whenever work is scheduled.
func (l *Loop) requestFrame() {
	l.pending.Store(true)
	select {
	case l.wakeCh <- struct{}{}:
	default:
	}
}

// Dispatch schedules fn to run on the loop goroutine before the next
// frame. It is safe to call from any goroutine and is the only supported
// way to reach the scheduler from outside the loop.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.dispatch = append(l.dispatch, fn)
	l.mu.Unlock()
	l.requestFrame()
}

// Start launches the loop goroutine. Calling Start on a running or
// stopped loop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	go l.run()
}

// Stop terminates the loop goroutine. Pending dispatch callbacks are
// dropped. Stop is idempotent; a stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

func (l *Loop) run() {
	timer := time.NewTimer(l.interval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		if !l.pending.Load() {
			select {
			case <-l.wakeCh:
			case <-l.stopCh:
				return
			}
			continue
		}

		start := time.Now()
		l.pending.Store(false)
		l.runDispatched()
		l.processFrame()

		// Pace to the target interval. More work may have been scheduled
		// during the frame; the pending flag decides at the top.
		if sleep := l.interval - time.Since(start); sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-l.stopCh:
				return
			}
		} else {
			select {
			case <-l.stopCh:
				return
			default:
			}
		}
	}
}

func (l *Loop) runDispatched() {
	l.mu.Lock()
	if len(l.dispatch) == 0 {
		l.mu.Unlock()
		return
	}
	callbacks := l.dispatch
	l.dispatch = nil
	l.mu.Unlock()

	for _, fn := range callbacks {
		l.runCallback(fn)
	}
}

func (l *Loop) runCallback(fn func()) {
	defer errors.Recover("frame.Loop.Dispatch")
	fn()
}

func (l *Loop) processFrame() {
	defer errors.Recover("frame.Loop.ProcessFrame")
	l.sched.ProcessFrame()
}

var (
	defaultOnce sync.Once
	defaultLoop *Loop
)

// Default returns the process-wide frame loop, creating and starting it
// on first use. Libraries that need a scheduler without wiring one
// explicitly share this loop.
func Default() *Loop {
	defaultOnce.Do(func() {
		defaultLoop = NewLoop(DefaultFPS)
		defaultLoop.Start()
	})
	return defaultLoop
}
