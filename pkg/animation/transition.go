package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/generators"
)

// DefaultDuration is the tween duration used when a Transition leaves
// Duration zero.
const DefaultDuration = 300 * time.Millisecond

// GeneratorType selects which generator drives an animation.
type GeneratorType uint8

const (
	// TypeTween interpolates through the keyframes over a fixed duration
	// with easing. This is the default.
	TypeTween GeneratorType = iota
	// TypeSpring simulates damped harmonic motion between two keyframes.
	TypeSpring
	// TypeInertia glides from the first keyframe under friction, deriving
	// its own target from velocity.
	TypeInertia
	// TypeDecay is friction without boundaries, a separate name for
	// callers porting fling code.
	TypeDecay
)

// String returns the generator type name.
func (t GeneratorType) String() string {
	switch t {
	case TypeTween:
		return "tween"
	case TypeSpring:
		return "spring"
	case TypeInertia:
		return "inertia"
	case TypeDecay:
		return "decay"
	}
	return "unknown"
}

// RepeatType selects how iterations beyond the first play back.
type RepeatType uint8

const (
	// RepeatLoop restarts each iteration from the beginning.
	RepeatLoop RepeatType = iota
	// RepeatReverse plays odd iterations backwards by mirroring progress
	// through the same generator.
	RepeatReverse
	// RepeatMirror plays odd iterations on a reversed generator with
	// negated velocity, so physics feel the same in both directions.
	RepeatMirror
)

// String returns the repeat type name.
func (t RepeatType) String() string {
	switch t {
	case RepeatLoop:
		return "loop"
	case RepeatReverse:
		return "reverse"
	case RepeatMirror:
		return "mirror"
	}
	return "unknown"
}

// GeneratorFactory builds a custom generator from resolved numeric
// keyframes. Non-numeric keyframe pairs are mapped through a 0..100
// progress range before the factory sees them, the same as springs.
type GeneratorFactory func(keyframes []float64, velocity float64, t Transition) generators.Generator[float64]

// Transition holds the tunables of an animation: which generator to
// use, its timing, and its physics. The zero value is a 300ms eased
// tween. Transitions carry no keyframes or callbacks, so one value can
// configure many animations; see Options for the per-animation half.
type Transition struct {
	// Type selects the generator. Defaults to TypeTween.
	Type GeneratorType
	// Generator overrides Type with a custom generator factory.
	Generator GeneratorFactory

	// Duration is one iteration's length for tweens, or the perceptual
	// duration for duration-configured springs. Zero means the 300ms
	// default for tweens and physical configuration for springs.
	Duration time.Duration
	// Delay postpones the start. Negative values begin partway through.
	Delay time.Duration

	// Repeat plays the animation this many extra times.
	Repeat int
	// RepeatType selects loop, reverse or mirror playback for the extra
	// iterations.
	RepeatType RepeatType
	// RepeatDelay pauses between iterations.
	RepeatDelay time.Duration

	// Ease applies one easing to every tween segment. Defaults to
	// easeInOut.
	Ease easing.Function
	// Eases applies per-segment easing and takes precedence over Ease.
	Eases []easing.Function
	// Times positions each keyframe as a progress fraction in [0, 1].
	Times []float64

	// Spring physics. Stiffness, Damping and Mass configure the spring
	// directly; Bounce pairs with Duration or VisualDuration as the
	// perceptual alternative.
	Stiffness      float64
	Damping        float64
	Mass           float64
	Bounce         *float64
	VisualDuration time.Duration
	// RestSpeed and RestDelta are the settling thresholds shared by
	// springs and inertia.
	RestSpeed float64
	RestDelta float64

	// Inertia physics.
	Power           float64
	TimeConstant    float64
	Min             *float64
	Max             *float64
	BounceStiffness float64
	BounceDamping   float64
	// ModifyTarget adjusts inertia's computed resting target, for
	// example to snap it to a grid.
	ModifyTarget func(target float64) float64

	// Autoplay starts playback as soon as keyframes resolve. nil means
	// true.
	Autoplay *bool

	// Driver supplies the tick source. Defaults to the scheduler's
	// update phase.
	Driver frame.DriverFactory
}

func (t *Transition) autoplay() bool {
	return t.Autoplay == nil || *t.Autoplay
}

func (t *Transition) usesPhysics() bool {
	return t.Generator != nil || t.Type == TypeSpring || t.Type == TypeInertia || t.Type == TypeDecay
}

// tweenDurationMS is the tween duration in milliseconds, applying the
// package default.
func (t *Transition) tweenDurationMS() float64 {
	if t.Duration == 0 {
		return milliseconds(DefaultDuration)
	}
	return milliseconds(t.Duration)
}

func (t *Transition) delayMS() float64 {
	return milliseconds(t.Delay)
}

func (t *Transition) repeatDelayMS() float64 {
	return milliseconds(t.RepeatDelay)
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
