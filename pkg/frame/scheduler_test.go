package frame

import (
	"testing"
)

// stubClock is a hand-advanced clock for driving ProcessFrame in tests.
type stubClock struct {
	now float64
}

func (c *stubClock) Now() float64 { return c.now }

func (c *stubClock) advance(ms float64) { c.now += ms }

func newTestScheduler() (*Scheduler, *stubClock) {
	clock := &stubClock{}
	return NewScheduler(clock, nil), clock
}

func TestPhasesRunInOrder(t *testing.T) {
	s, _ := newTestScheduler()

	var order []Phase
	phases := []Phase{
		PhasePostRender, PhaseRender, PhasePreRender,
		PhaseUpdate, PhaseResolveKeyframes, PhaseRead,
	}
	for _, phase := range phases {
		p := phase
		s.Schedule(p, NewTask(func(Data) {
			order = append(order, p)
		}), 0)
	}

	s.ProcessFrame()

	want := []Phase{
		PhaseRead, PhaseResolveKeyframes, PhaseUpdate,
		PhasePreRender, PhaseRender, PhasePostRender,
	}
	if len(order) != len(want) {
		t.Fatalf("ran %d tasks, want %d", len(order), len(want))
	}
	for i, phase := range want {
		if order[i] != phase {
			t.Errorf("position %d: got %v, want %v", i, order[i], phase)
		}
	}
}

func TestScheduleDeduplicatesTask(t *testing.T) {
	s, _ := newTestScheduler()

	runs := 0
	task := NewTask(func(Data) { runs++ })
	s.Schedule(PhaseUpdate, task, 0)
	s.Schedule(PhaseUpdate, task, 0)
	s.Schedule(PhaseUpdate, task, 0)

	s.ProcessFrame()

	if runs != 1 {
		t.Errorf("task ran %d times, want 1", runs)
	}
}

func TestTasksRunInSchedulingOrder(t *testing.T) {
	s, _ := newTestScheduler()

	var order []int
	for i := 0; i < 4; i++ {
		n := i
		s.Schedule(PhaseUpdate, NewTask(func(Data) {
			order = append(order, n)
		}), 0)
	}

	s.ProcessFrame()

	for i, n := range order {
		if n != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestTaskRunsOnceWithoutKeepAlive(t *testing.T) {
	s, _ := newTestScheduler()

	runs := 0
	s.Schedule(PhaseUpdate, NewTask(func(Data) { runs++ }), 0)

	s.ProcessFrame()
	s.ProcessFrame()

	if runs != 1 {
		t.Errorf("task ran %d times, want 1", runs)
	}
}

func TestKeepAliveRunsEveryFrame(t *testing.T) {
	s, clock := newTestScheduler()

	runs := 0
	task := NewTask(func(Data) { runs++ })
	s.Schedule(PhaseUpdate, task, KeepAlive)

	for i := 0; i < 3; i++ {
		s.ProcessFrame()
		clock.advance(16)
	}
	s.Cancel(task)
	s.ProcessFrame()

	if runs != 3 {
		t.Errorf("task ran %d times, want 3", runs)
	}
}

func TestKeepAliveTaskCanCancelItself(t *testing.T) {
	s, _ := newTestScheduler()

	runs := 0
	var task *Task
	task = NewTask(func(Data) {
		runs++
		s.Cancel(task)
	})
	s.Schedule(PhaseUpdate, task, KeepAlive)

	s.ProcessFrame()
	s.ProcessFrame()

	if runs != 1 {
		t.Errorf("task ran %d times, want 1", runs)
	}
}

func TestCancelBeforeFrameRemovesTask(t *testing.T) {
	s, _ := newTestScheduler()

	runs := 0
	task := NewTask(func(Data) { runs++ })
	s.Schedule(PhaseUpdate, task, 0)
	s.Cancel(task)

	s.ProcessFrame()

	if runs != 0 {
		t.Errorf("cancelled task ran %d times, want 0", runs)
	}
}

func TestCancelFromEarlierPhaseRemovesLaterTask(t *testing.T) {
	s, _ := newTestScheduler()

	renderRan := false
	renderTask := NewTask(func(Data) { renderRan = true })
	s.Schedule(PhaseRender, renderTask, 0)
	s.Schedule(PhaseRead, NewTask(func(Data) {
		s.Cancel(renderTask)
	}), 0)

	s.ProcessFrame()

	if renderRan {
		t.Error("render task ran after being cancelled during the read phase")
	}
}

func TestScheduleDuringPassDefersToNextFrame(t *testing.T) {
	s, _ := newTestScheduler()

	innerRuns := 0
	s.Schedule(PhaseUpdate, NewTask(func(Data) {
		s.Schedule(PhaseUpdate, NewTask(func(Data) { innerRuns++ }), 0)
	}), 0)

	s.ProcessFrame()
	if innerRuns != 0 {
		t.Fatalf("inner task ran during the scheduling frame")
	}
	s.ProcessFrame()
	if innerRuns != 1 {
		t.Errorf("inner task ran %d times after second frame, want 1", innerRuns)
	}
}

func TestImmediateRunsWithinCurrentPass(t *testing.T) {
	s, _ := newTestScheduler()

	innerRan := false
	s.Schedule(PhaseUpdate, NewTask(func(Data) {
		s.Schedule(PhaseUpdate, NewTask(func(Data) { innerRan = true }), Immediate)
	}), 0)

	s.ProcessFrame()

	if !innerRan {
		t.Error("immediate task did not run within the current pass")
	}
}

func TestImmediateForLaterPhaseRunsSameFrame(t *testing.T) {
	s, _ := newTestScheduler()

	renderRan := false
	s.Schedule(PhaseUpdate, NewTask(func(Data) {
		// Render has not started processing yet, so Immediate falls
		// through to normal next-buffer scheduling, which this frame's
		// render pass will pick up.
		s.Schedule(PhaseRender, NewTask(func(Data) { renderRan = true }), Immediate)
	}), 0)

	s.ProcessFrame()

	if !renderRan {
		t.Error("render task scheduled from update did not run this frame")
	}
}

func TestFirstFrameUsesDefaultDelta(t *testing.T) {
	s, clock := newTestScheduler()
	clock.now = 500

	var got float64
	s.Schedule(PhaseUpdate, NewTask(func(d Data) { got = d.Delta }), 0)
	s.ProcessFrame()

	want := 1000.0 / 60.0
	if got != want {
		t.Errorf("first frame delta = %v, want %v", got, want)
	}
}

func TestDeltaClampedToMaxElapsed(t *testing.T) {
	s, clock := newTestScheduler()

	var deltas []float64
	task := NewTask(func(d Data) { deltas = append(deltas, d.Delta) })
	s.Schedule(PhaseUpdate, task, KeepAlive)

	s.ProcessFrame()
	clock.advance(1000)
	s.ProcessFrame()
	s.Cancel(task)
	s.ProcessFrame()

	if len(deltas) < 2 {
		t.Fatalf("ran %d frames, want at least 2", len(deltas))
	}
	if deltas[1] != 40 {
		t.Errorf("stalled frame delta = %v, want clamp to 40", deltas[1])
	}
}

func TestDeltaFlooredToOneMillisecond(t *testing.T) {
	s, _ := newTestScheduler()

	var deltas []float64
	task := NewTask(func(d Data) { deltas = append(deltas, d.Delta) })
	s.Schedule(PhaseUpdate, task, KeepAlive)

	s.ProcessFrame()
	s.ProcessFrame() // clock did not advance
	s.Cancel(task)
	s.ProcessFrame()

	if deltas[1] != 1 {
		t.Errorf("zero-advance frame delta = %v, want floor of 1", deltas[1])
	}
}

func TestWakeAfterIdleResetsDelta(t *testing.T) {
	s, clock := newTestScheduler()

	var deltas []float64
	record := func(d Data) { deltas = append(deltas, d.Delta) }

	s.Schedule(PhaseUpdate, NewTask(record), 0)
	s.ProcessFrame()

	// Long idle gap, then new work. The gap must not leak into delta.
	clock.advance(5000)
	s.Schedule(PhaseUpdate, NewTask(record), 0)
	s.ProcessFrame()

	want := 1000.0 / 60.0
	if deltas[1] != want {
		t.Errorf("post-idle delta = %v, want default %v", deltas[1], want)
	}
}

func TestReentrantProcessFrameRunsOneExtraPass(t *testing.T) {
	s, _ := newTestScheduler()

	passes := 0
	s.Schedule(PhaseUpdate, NewTask(func(Data) {
		passes++
		if passes == 1 {
			// Schedule follow-up work, then request a reprocess from
			// within the pass. It must not recurse.
			s.Schedule(PhaseUpdate, NewTask(func(Data) { passes++ }), 0)
			s.ProcessFrame()
		}
	}), 0)

	s.ProcessFrame()

	// passes: outer task (1) + follow-up task in the extra pass (2).
	if passes != 2 {
		t.Errorf("observed %d task runs, want 2 (one extra synchronous pass)", passes)
	}
}

func TestRequestFrameFiresOncePerWake(t *testing.T) {
	clock := &stubClock{}
	wakes := 0
	s := NewScheduler(clock, func() { wakes++ })

	s.Schedule(PhaseUpdate, NewTask(func(Data) {}), 0)
	s.Schedule(PhaseRender, NewTask(func(Data) {}), 0)
	s.Schedule(PhaseRead, NewTask(func(Data) {}), 0)

	if wakes != 1 {
		t.Errorf("scheduling three tasks while idle produced %d wakes, want 1", wakes)
	}

	s.ProcessFrame()
	if s.HasPendingFrame() {
		t.Error("no keep-alive tasks, but a frame is still pending")
	}
}

func TestKeepAliveRequestsNextFrame(t *testing.T) {
	clock := &stubClock{}
	wakes := 0
	s := NewScheduler(clock, func() { wakes++ })

	task := NewTask(func(Data) {})
	s.Schedule(PhaseUpdate, task, KeepAlive)
	wakesBefore := wakes

	s.ProcessFrame()

	if wakes != wakesBefore+1 {
		t.Errorf("keep-alive frame produced %d new wakes, want 1", wakes-wakesBefore)
	}
	if !s.HasPendingFrame() {
		t.Error("keep-alive task should leave a frame pending")
	}
}

func TestNowIsFrameLockedDuringPass(t *testing.T) {
	s, clock := newTestScheduler()
	clock.now = 100

	var sampled float64
	s.Schedule(PhaseUpdate, NewTask(func(d Data) {
		clock.advance(7) // clock moves mid-frame
		sampled = s.Now()
	}), 0)

	s.ProcessFrame()

	if sampled != 100 {
		t.Errorf("Now() during pass = %v, want frame timestamp 100", sampled)
	}
	if got := s.Now(); got != 107 {
		t.Errorf("Now() after pass = %v, want clock time 107", got)
	}
}

func TestCallbacksShareFrameTimestamp(t *testing.T) {
	s, clock := newTestScheduler()
	clock.now = 250

	var stamps []float64
	for _, phase := range []Phase{PhaseRead, PhaseUpdate, PhaseRender} {
		s.Schedule(phase, NewTask(func(d Data) {
			stamps = append(stamps, d.Timestamp)
			clock.advance(3)
		}), 0)
	}

	s.ProcessFrame()

	for _, ts := range stamps {
		if ts != 250 {
			t.Fatalf("timestamps = %v, want all 250", stamps)
		}
	}
}
