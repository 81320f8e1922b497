// Package motion provides observable value containers that animations
// write into and renderers read from.
//
// A Value holds the current state of one animatable property along with
// enough history to estimate its velocity. Values own at most one
// animation at a time: starting a new one stops the previous (the
// exclusivity invariant), so gesture hand-offs never produce two writers.
//
// Values are not safe for concurrent use; like the rest of the engine
// they belong to their scheduler's frame goroutine.
package motion

import (
	"math"

	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/generators"
	"github.com/go-drift/motion/pkg/valuetypes"
)

// MaxVelocityDelta is how long, in milliseconds, a value update stays
// fresh enough to report a velocity. Older samples read as stationary.
const MaxVelocityDelta = 30.0

// Stoppable is the slice of playback control a Value needs from the
// animation that owns it.
type Stoppable interface {
	Stop()
}

// PassiveEffect intercepts raw Set calls. Instead of writing v
// directly, the effect decides when and with what values to invoke set,
// typically over several frames.
type PassiveEffect[T comparable] func(v T, set func(T))

// ValueConfig carries optional Value construction settings.
type ValueConfig struct {
	// Scheduler binds the value to a frame scheduler for timestamps and
	// read-phase bookkeeping. Defaults to the shared loop's scheduler.
	Scheduler *frame.Scheduler
}

// Value is an observable container for one animatable property. The
// comparable constraint backs change detection; animated values are
// numbers and compound strings.
type Value[T comparable] struct {
	sched *frame.Scheduler

	current        T
	prev           T
	prevFrameValue T
	hasPrevFrame   bool
	updatedAt      float64
	prevUpdatedAt  float64
	canTrack       *bool

	events [numEvents]listenerList[T]

	animation   Stoppable
	canceling   bool
	hasAnimated bool

	passiveEffect PassiveEffect[T]
	stopPassive   func()
}

// NewValue creates a value holding initial.
func NewValue[T comparable](initial T, cfg ...ValueConfig) *Value[T] {
	v := &Value[T]{}
	if len(cfg) > 0 && cfg[0].Scheduler != nil {
		v.sched = cfg[0].Scheduler
	} else {
		v.sched = frame.Default().Scheduler()
	}
	v.setCurrent(initial)
	return v
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Previous returns the value before the most recent update.
func (v *Value[T]) Previous() T {
	return v.prev
}

// HasAnimated reports whether any animation ever owned this value.
func (v *Value[T]) HasAnimated() bool {
	return v.hasAnimated
}

// Scheduler returns the scheduler this value tracks time against.
func (v *Value[T]) Scheduler() *frame.Scheduler {
	return v.sched
}

// Set updates the value. With a passive effect attached the write is
// routed through it; otherwise subscribers are notified immediately.
// Pass render=false to suppress the renderRequest notification.
func (v *Value[T]) Set(val T, render ...bool) {
	doRender := true
	if len(render) > 0 {
		doRender = render[0]
	}
	if !doRender || v.passiveEffect == nil {
		v.updateAndNotify(val, doRender)
		return
	}
	v.passiveEffect(val, func(smoothed T) {
		v.updateAndNotify(smoothed, true)
	})
}

// Jump moves straight to val: velocity history is cleared so the move
// reads as instantaneous, and unless endAnimation is false any owning
// animation and running passive effect are stopped.
func (v *Value[T]) Jump(val T, endAnimation ...bool) {
	end := true
	if len(endAnimation) > 0 {
		end = endAnimation[0]
	}
	v.updateAndNotify(val, true)
	v.prev = val
	var zero T
	v.prevFrameValue = zero
	v.hasPrevFrame = false
	v.prevUpdatedAt = 0
	if end {
		v.Stop()
	}
	if v.stopPassive != nil {
		v.stopPassive()
	}
}

// SetWithVelocity sets current while backdating prev as a sample taken
// deltaMs ago, so the next Velocity call reports the hand-off velocity.
func (v *Value[T]) SetWithVelocity(prev, current T, deltaMs float64) {
	v.Set(current)
	var zero T
	v.prev = zero
	v.prevFrameValue = prev
	v.hasPrevFrame = true
	v.prevUpdatedAt = v.updatedAt - deltaMs
}

// Velocity returns the value's velocity in units per second. It reports
// 0 when the value is not numeric, has no prior frame sample, or was
// last updated more than MaxVelocityDelta milliseconds ago.
func (v *Value[T]) Velocity() float64 {
	now := v.sched.Now()
	if v.canTrack == nil || !*v.canTrack || !v.hasPrevFrame ||
		now-v.updatedAt > MaxVelocityDelta {
		return 0
	}
	current, _ := numeric(v.current)
	prev, _ := numeric(v.prevFrameValue)
	return generators.VelocityPerSecond(
		current-prev,
		math.Min(v.updatedAt-v.prevUpdatedAt, MaxVelocityDelta),
	)
}

// On subscribes fn to event, returning an unsubscribe function.
// Unsubscribing the last change listener schedules a read-phase check
// that stops a then-unobserved animation.
func (v *Value[T]) On(event Event, fn func(T)) func() {
	id := v.events[event].add(fn)
	if event == EventChange {
		return func() {
			v.events[event].remove(id)
			v.sched.Schedule(frame.PhaseRead, frame.NewTask(func(frame.Data) {
				if v.events[EventChange].size() == 0 {
					v.Stop()
				}
			}), 0)
		}
	}
	return func() {
		v.events[event].remove(id)
	}
}

// StartAnimation hands ownership to a new animation. begin receives a
// done callback the animation must invoke exactly once when it finishes
// on any path, and returns the stop handle. The returned channel closes
// once done runs. Natural completion notifies animationComplete; Stop
// notifies animationCancel instead.
func (v *Value[T]) StartAnimation(begin func(done func()) Stoppable) <-chan struct{} {
	v.Stop()

	finished := make(chan struct{})
	signaled := false
	done := func() {
		if signaled {
			return
		}
		signaled = true
		v.animation = nil
		var zero T
		if v.canceling {
			v.events[EventAnimationCancel].notify(zero)
		} else {
			v.events[EventAnimationComplete].notify(zero)
		}
		close(finished)
	}

	v.hasAnimated = true
	var zero T
	v.events[EventAnimationStart].notify(zero)
	animation := begin(done)
	if !signaled {
		v.animation = animation
	}
	return finished
}

// Stop halts the owning animation, if any, notifying animationCancel.
func (v *Value[T]) Stop() {
	if v.animation == nil {
		return
	}
	v.canceling = true
	v.animation.Stop()
	v.canceling = false
	v.animation = nil
}

// Attach routes future Set calls through effect. stop is invoked when
// the value jumps or is destroyed and must halt any in-flight smoothing.
func (v *Value[T]) Attach(effect PassiveEffect[T], stop func()) {
	if v.stopPassive != nil {
		v.stopPassive()
	}
	v.passiveEffect = effect
	v.stopPassive = stop
}

// Destroy removes all subscribers and stops any animation and passive
// effect. The value remains readable.
func (v *Value[T]) Destroy() {
	for i := range v.events {
		v.events[i].clear()
	}
	v.Stop()
	if v.stopPassive != nil {
		v.stopPassive()
	}
}

func (v *Value[T]) updateAndNotify(val T, render bool) {
	now := v.sched.Now()
	// One history sample per frame: only the first write at a given
	// timestamp rotates the prev-frame slot.
	if v.updatedAt != now {
		v.setPrevFrameValue(v.current)
	}
	v.prev = v.current
	v.setCurrent(val)

	if v.current != v.prev {
		v.events[EventChange].notify(v.current)
	}
	if render {
		v.events[EventRenderRequest].notify(v.current)
	}
}

func (v *Value[T]) setCurrent(val T) {
	v.current = val
	v.updatedAt = v.sched.Now()
	if v.canTrack == nil && any(val) != nil {
		_, ok := numeric(val)
		v.canTrack = &ok
	}
}

func (v *Value[T]) setPrevFrameValue(val T) {
	v.prevFrameValue = val
	v.hasPrevFrame = true
	v.prevUpdatedAt = v.updatedAt
}

// numeric extracts a float from a value for velocity math. Strings use
// their leading number, so "5px" tracks velocity like 5.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		return valuetypes.LeadingNumber(n)
	}
	return 0, false
}
