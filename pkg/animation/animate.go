package animation

import (
	"github.com/go-drift/motion/pkg/motion"
)

// AnimateValue starts an animation that drives v, stopping whatever
// animation owned the value before. The value's current state becomes
// the origin for nil first keyframes, physics generators inherit the
// value's velocity when Options leaves it zero, and every sampled
// update is written through v.Set so subscribers and render requests
// fire as usual.
//
// The value's animation lifecycle events fire around playback:
// animationStart when the animation is adopted, then animationComplete
// or animationCancel when it settles or is stopped.
func AnimateValue[T comparable](v *motion.Value[T], opts Options[T]) *Animation[T] {
	opts.Value = v
	if opts.Scheduler == nil {
		opts.Scheduler = v.Scheduler()
	}
	if opts.Transition.usesPhysics() && opts.Velocity == 0 {
		opts.Velocity = v.Velocity()
	}

	onUpdate := opts.OnUpdate
	opts.OnUpdate = func(val T) {
		v.Set(val)
		if onUpdate != nil {
			onUpdate(val)
		}
	}

	var a *Animation[T]
	v.StartAnimation(func(done func()) motion.Stoppable {
		opts.onFinished = done
		a = New(opts)
		return a
	})
	return a
}
