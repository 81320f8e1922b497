package generators

import (
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
)

// Mixer produces the blend of two values at a given progress.
type Mixer[T any] func(progress float64) T

// MixerFactory builds a Mixer for a from/to pair. Factories for
// non-numeric types (colors, composite strings) live in pkg/valuetypes.
type MixerFactory[T any] func(from, to T) Mixer[T]

// MixNumber linearly interpolates between from and to.
func MixNumber(from, to, progress float64) float64 {
	return from + (to-from)*progress
}

// NumberMixer is the MixerFactory for float64 values.
func NumberMixer(from, to float64) Mixer[float64] {
	return func(progress float64) float64 {
		return MixNumber(from, to, progress)
	}
}

// numberMixerFor returns the built-in mixer factory when T is float64.
func numberMixerFor[T any]() (MixerFactory[T], bool) {
	var zero T
	if _, ok := any(zero).(float64); !ok {
		return nil, false
	}
	factory := func(from, to T) Mixer[T] {
		a := any(from).(float64)
		b := any(to).(float64)
		return func(progress float64) T {
			return any(MixNumber(a, b, progress)).(T)
		}
	}
	return factory, true
}

// InterpolateOptions configures Interpolate.
type InterpolateOptions[T any] struct {
	// Eases applies per-segment easing to progress before mixing. Extra
	// or nil entries are treated as linear.
	Eases []easing.Function
	// Mixer builds per-segment mixers. Required unless T is float64.
	Mixer MixerFactory[T]
	// Unclamped lets inputs outside the breakpoint range extrapolate
	// through the first or last segment instead of clamping.
	Unclamped bool
}

// Interpolate builds a function mapping an input value through a series
// of breakpoints to blended output values. input must be sorted
// ascending or descending and match output in length.
func Interpolate[T any](input []float64, output []T, opts InterpolateOptions[T]) func(float64) T {
	errors.Invariant(len(input) == len(output), "generators.Interpolate",
		"input length %d does not match output length %d", len(input), len(output))
	if n := min(len(input), len(output)); len(input) != len(output) {
		input = input[:n]
		output = output[:n]
	}
	if len(input) == 0 {
		var zero T
		return func(float64) T { return zero }
	}
	if len(input) == 1 {
		only := output[0]
		return func(float64) T { return only }
	}

	mixerFactory := opts.Mixer
	if mixerFactory == nil {
		builtin, ok := numberMixerFor[T]()
		errors.Invariant(ok, "generators.Interpolate",
			"no mixer provided for non-numeric output type %T", output[0])
		if !ok {
			first := output[0]
			return func(float64) T { return first }
		}
		mixerFactory = builtin
	}

	// Descending breakpoints are reversed so the segment scan below can
	// assume ascending order.
	if input[0] > input[len(input)-1] {
		input = reversedFloats(input)
		output = reversedValues(output)
	}
	zeroDeltaStart := input[0] == input[1]

	mixers := make([]Mixer[T], 0, len(output)-1)
	for i := 0; i < len(output)-1; i++ {
		m := mixerFactory(output[i], output[i+1])
		if i < len(opts.Eases) && opts.Eases[i] != nil {
			ease := opts.Eases[i]
			inner := m
			m = func(progress float64) T { return inner(ease(progress)) }
		}
		mixers = append(mixers, m)
	}

	interpolator := func(v float64) T {
		if zeroDeltaStart && v < input[0] {
			return output[0]
		}
		i := 0
		if len(mixers) > 1 {
			for ; i < len(input)-2; i++ {
				if v < input[i+1] {
					break
				}
			}
		}
		return mixers[i](unitProgress(input[i], input[i+1], v))
	}

	if opts.Unclamped {
		return interpolator
	}
	lo, hi := input[0], input[len(input)-1]
	return func(v float64) T {
		return interpolator(clamp(lo, hi, v))
	}
}

func reversedFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func reversedValues[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// KeyframesOptions configures a Keyframes generator.
type KeyframesOptions[T any] struct {
	// Keyframes is the value sequence to animate through.
	Keyframes []T
	// Duration of the whole sequence in milliseconds. Zero completes
	// immediately; the playback layer supplies its default before
	// constructing the generator.
	Duration float64
	// Times positions each keyframe as a progress fraction in [0, 1].
	// Length must match Keyframes; mismatches are ignored with a
	// warning and keyframes spaced evenly.
	Times []float64
	// Ease applies one easing to every segment. Defaults to easeInOut.
	Ease easing.Function
	// Eases applies per-segment easing and takes precedence over Ease.
	Eases []easing.Function
	// Mixer blends between keyframes. Required unless T is float64.
	Mixer MixerFactory[T]
}

// Keyframes generates values by interpolating through a sequence with
// per-segment easing.
type Keyframes[T any] struct {
	state    Result[T]
	duration float64
	mapTime  func(float64) T
}

// NewKeyframes creates a keyframes generator.
func NewKeyframes[T any](opts KeyframesOptions[T]) *Keyframes[T] {
	values := opts.Keyframes
	errors.Invariant(len(values) > 0, "generators.NewKeyframes", "no keyframes provided")
	if len(values) == 0 {
		var zero T
		values = []T{zero}
	}

	times := opts.Times
	if times != nil && len(times) != len(values) {
		errors.Warnf("generators.NewKeyframes",
			"times length %d does not match keyframes length %d, spacing keyframes evenly",
			len(times), len(values))
		times = nil
	}
	if times == nil {
		times = defaultOffsets(len(values))
	}

	eases := opts.Eases
	if eases == nil {
		ease := opts.Ease
		if ease == nil {
			ease = easing.EaseInOut
		}
		eases = make([]easing.Function, len(values)-1)
		for i := range eases {
			eases[i] = ease
		}
	}

	absoluteTimes := make([]float64, len(times))
	for i, offset := range times {
		absoluteTimes[i] = offset * opts.Duration
	}

	g := &Keyframes[T]{
		state:    Result[T]{Value: values[0]},
		duration: opts.Duration,
	}
	g.mapTime = Interpolate(absoluteTimes, values, InterpolateOptions[T]{
		Eases: eases,
		Mixer: opts.Mixer,
	})
	return g
}

// Next samples the sequence at elapsed milliseconds.
func (k *Keyframes[T]) Next(elapsed float64) *Result[T] {
	k.state.Value = k.mapTime(elapsed)
	k.state.Done = elapsed >= k.duration
	return &k.state
}

// CalculatedDuration returns the configured duration.
func (k *Keyframes[T]) CalculatedDuration() (float64, bool) {
	return k.duration, true
}

// defaultOffsets spaces n keyframes evenly across [0, 1].
func defaultOffsets(n int) []float64 {
	offsets := make([]float64, n)
	if n == 1 {
		return offsets
	}
	for i := range offsets {
		offsets[i] = float64(i) / float64(n-1)
	}
	return offsets
}
