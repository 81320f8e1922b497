// Package generators provides keyframe generators, the pure simulation
// kernels of the motion engine.
//
// A generator maps elapsed time to a value and a done flag. Generators
// hold no clocks and schedule nothing: the playback controller in
// pkg/animation decides what "elapsed" means under delay, repeat,
// reverse and speed, and a generator only answers "what is the value at
// t milliseconds".
//
// Three generators are provided:
//
//   - [Spring]: damped harmonic motion solved in closed form, configured
//     physically (stiffness/damping/mass) or perceptually
//     (duration/bounce, converted by [FindSpring]).
//
//   - [Inertia]: exponential friction decay for flick gestures, with an
//     optional spring hand-off at min/max boundaries.
//
//   - [Keyframes]: piecewise interpolation through a value sequence with
//     per-segment easing.
//
// Spring and Inertia simulate float64 values. Keyframes is generic over
// any value type given a [MixerFactory] for it.
package generators

import "math"

// Result holds one generator sample. Generators reuse a single Result
// across calls to Next, so callers must copy values they want to retain
// past the next call.
type Result[T any] struct {
	// Value is the animated value at the sampled time.
	Value T
	// Done reports whether the generator has settled. Once done, the
	// value is pinned to the final keyframe.
	Done bool
}

// Generator produces animation values from elapsed time.
//
// Next must be a pure function of elapsed: generators are sampled out of
// order (repeat math replays earlier times, duration estimation scans
// ahead) and must return identical results for identical inputs.
type Generator[T any] interface {
	// Next samples the generator at elapsed milliseconds since start.
	Next(elapsed float64) *Result[T]

	// CalculatedDuration returns the generator's total duration in
	// milliseconds when it is known up front. ok is false for
	// settling-determined generators; use CalcDuration to estimate.
	CalculatedDuration() (duration float64, ok bool)
}

const (
	// MaxDuration caps duration estimation. Generators that have not
	// settled by this elapsed time are treated as unbounded.
	MaxDuration = 20000.0

	// durationStep is the sampling interval used by CalcDuration.
	durationStep = 50.0
)

// CalcDuration estimates a settling-determined generator's duration by
// sampling at 50ms intervals until done. Returns +Inf if the generator
// does not settle within MaxDuration.
func CalcDuration[T any](g Generator[T]) float64 {
	duration := 0.0
	state := g.Next(duration)
	for !state.Done && duration < MaxDuration {
		duration += durationStep
		state = g.Next(duration)
	}
	if duration >= MaxDuration {
		return math.Inf(1)
	}
	return duration
}

// VelocityPerSecond converts a delta observed over frameDelta
// milliseconds to a velocity in units per second. A zero frameDelta
// yields zero rather than dividing by it.
func VelocityPerSecond(delta, frameDelta float64) float64 {
	if frameDelta == 0 {
		return 0
	}
	return delta * (1000 / frameDelta)
}

// velocitySampleDuration is the lookback window, in milliseconds, used
// to estimate instantaneous velocity by finite difference.
const velocitySampleDuration = 5.0

// EstimateVelocity approximates the instantaneous velocity of resolve at
// time t, in units per second, given the already-computed current value.
func EstimateVelocity(resolve func(t float64) float64, t, current float64) float64 {
	prevT := math.Max(t-velocitySampleDuration, 0)
	return VelocityPerSecond(current-resolve(prevT), t-prevT)
}

// Float returns a pointer to v, for optional option fields such as
// SpringOptions.Bounce and InertiaOptions.Min.
func Float(v float64) *float64 {
	return &v
}

// clamp restricts v to [lo, hi].
func clamp(lo, hi, v float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// unitProgress reports how far value lies between from and to, returning
// 1 for a degenerate range.
func unitProgress(from, to, value float64) float64 {
	if to-from == 0 {
		return 1
	}
	return (value - from) / (to - from)
}
