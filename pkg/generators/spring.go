package generators

import (
	"fmt"
	"math"

	"github.com/go-drift/motion/pkg/errors"
)

// Spring generator defaults. Zero option fields fall back to these.
const (
	DefaultStiffness = 100.0
	DefaultDamping   = 10.0
	DefaultMass      = 1.0
	DefaultDuration  = 800.0 // ms
	DefaultBounce    = 0.3

	// Rest thresholds. Granular values apply when the keyframe span is
	// below granularScale, where coarse thresholds would cut the tail
	// off visibly small movements.
	DefaultRestSpeed         = 2.0
	DefaultRestDelta         = 0.5
	granularRestSpeed        = 0.01
	granularRestDelta        = 0.005
	granularScale            = 5.0
	maxOverdampedFreqProduct = 300.0
)

// SpringOptions configures a Spring generator.
//
// A spring is defined either physically or perceptually. Setting any of
// Stiffness, Damping, or Mass selects the physical form and the
// remaining physics fields default. Otherwise Duration/Bounce (or
// VisualDuration/Bounce) are converted to physics via FindSpring; with
// nothing set the spring defaults to stiffness 100, damping 10, mass 1.
type SpringOptions struct {
	// Keyframes holds the origin and target. Springs simulate between
	// exactly two values; extra intermediate keyframes are an error.
	Keyframes []float64

	// Velocity is the initial velocity in units per second, in keyframe
	// direction convention: positive moves from origin toward target.
	Velocity float64

	// Stiffness of the spring, higher values are more sudden. Defaults
	// to 100.
	Stiffness float64
	// Damping opposes the motion, zero yields endless oscillation.
	// Defaults to 10.
	Damping float64
	// Mass of the moving object, higher values are more lethargic.
	// Defaults to 1.
	Mass float64

	// Duration is the perceptual total duration in milliseconds, used
	// with Bounce when no physics fields are set. Defaults to 800 and is
	// clamped to [10ms, 10s].
	Duration float64
	// Bounce sets how springy the result feels, 0 (no bounce) to 1.
	// nil defaults to 0.3. Distinct from zero: Bounce of 0 requests a
	// critically damped spring.
	Bounce *float64
	// VisualDuration, in milliseconds, is a perceptual shortcut: the
	// time the value takes to first visually reach the target, after
	// which physics-driven bounce may continue. Takes precedence over
	// Duration.
	VisualDuration float64

	// RestSpeed is the speed in units per second below which the spring
	// can settle. Zero selects 2, or 0.01 for spans under 5 units.
	RestSpeed float64
	// RestDelta is the displacement below which the spring can settle.
	// Zero selects 0.5, or 0.005 for spans under 5 units.
	RestDelta float64
}

// Spring generates damped harmonic motion between two values, solved in
// closed form so any elapsed time can be sampled directly.
type Spring struct {
	state Result[float64]

	resolve          func(t float64) float64
	target           float64
	dampingRatio     float64
	initialVelocity  float64 // units per millisecond, spring convention
	restSpeed        float64
	restDelta        float64
	duration         float64
	durationResolved bool
}

// NewSpring creates a spring generator from origin to target.
func NewSpring(opts SpringOptions) *Spring {
	kfs := opts.Keyframes
	errors.Invariant(len(kfs) >= 1 && len(kfs) <= 2, "generators.NewSpring",
		"springs animate between two values, got %d keyframes", len(kfs))
	if len(kfs) == 0 {
		kfs = []float64{0}
	}
	origin := kfs[0]
	target := kfs[len(kfs)-1]

	stiffness, damping, mass, duration, durationResolved := resolveSpringPhysics(opts)

	// The closed forms run in milliseconds and use the damped-spring
	// sign convention, so the public units-per-second velocity flips
	// sign and scales down.
	initialVelocity := -opts.Velocity / 1000

	dampingRatio := damping / (2 * math.Sqrt(stiffness*mass))
	initialDelta := target - origin
	undampedAngularFreq := math.Sqrt(stiffness/mass) / 1000

	isGranular := math.Abs(initialDelta) < granularScale
	restSpeed := opts.RestSpeed
	if restSpeed == 0 {
		if isGranular {
			restSpeed = granularRestSpeed
		} else {
			restSpeed = DefaultRestSpeed
		}
	}
	restDelta := opts.RestDelta
	if restDelta == 0 {
		if isGranular {
			restDelta = granularRestDelta
		} else {
			restDelta = DefaultRestDelta
		}
	}

	var resolve func(t float64) float64
	switch {
	case dampingRatio < 1:
		angularFreq := calcAngularFreq(undampedAngularFreq, dampingRatio)
		// Underdamped: decaying sinusoid.
		resolve = func(t float64) float64 {
			envelope := math.Exp(-dampingRatio * undampedAngularFreq * t)
			return target - envelope*
				(((initialVelocity+dampingRatio*undampedAngularFreq*initialDelta)/angularFreq)*
					math.Sin(angularFreq*t)+
					initialDelta*math.Cos(angularFreq*t))
		}
	case dampingRatio == 1:
		// Critically damped: fastest settle with no oscillation.
		resolve = func(t float64) float64 {
			return target - math.Exp(-undampedAngularFreq*t)*
				(initialDelta+(initialVelocity+undampedAngularFreq*initialDelta)*t)
		}
	default:
		// Overdamped: hyperbolic decay. The frequency product is capped
		// to keep Sinh/Cosh from overflowing at large t.
		dampedAngularFreq := undampedAngularFreq * math.Sqrt(dampingRatio*dampingRatio-1)
		resolve = func(t float64) float64 {
			envelope := math.Exp(-dampingRatio * undampedAngularFreq * t)
			freqForT := math.Min(dampedAngularFreq*t, maxOverdampedFreqProduct)
			return target - envelope*
				((initialVelocity+dampingRatio*undampedAngularFreq*initialDelta)*
					math.Sinh(freqForT)+
					dampedAngularFreq*initialDelta*math.Cosh(freqForT))/
					dampedAngularFreq
		}
	}

	return &Spring{
		state:            Result[float64]{Value: origin},
		resolve:          resolve,
		target:           target,
		dampingRatio:     dampingRatio,
		initialVelocity:  initialVelocity,
		restSpeed:        restSpeed,
		restDelta:        restDelta,
		duration:         duration,
		durationResolved: durationResolved,
	}
}

// resolveSpringPhysics applies defaults and the duration-to-physics
// conversion, returning the effective physics and, when the spring was
// configured by duration, the resolved duration in milliseconds.
func resolveSpringPhysics(opts SpringOptions) (stiffness, damping, mass, duration float64, durationResolved bool) {
	stiffness = opts.Stiffness
	damping = opts.Damping
	mass = opts.Mass

	physicsSet := stiffness != 0 || damping != 0 || mass != 0
	durationSet := opts.Duration != 0 || opts.Bounce != nil || opts.VisualDuration != 0

	if !physicsSet && durationSet {
		if opts.VisualDuration != 0 {
			visualSec := opts.VisualDuration / 1000
			root := (2 * math.Pi) / (visualSec * 1.2)
			stiffness = root * root
			bounce := 0.0
			if opts.Bounce != nil {
				bounce = *opts.Bounce
			}
			damping = 2 * clamp(minDampingRatio, maxDampingRatio, 1-bounce) * math.Sqrt(stiffness)
			return stiffness, damping, 1, 0, false
		}
		stiffness, damping, duration = FindSpring(opts)
		return stiffness, damping, 1, duration, true
	}

	if stiffness == 0 {
		stiffness = DefaultStiffness
	}
	if damping == 0 {
		damping = DefaultDamping
	}
	if mass == 0 {
		mass = DefaultMass
	}
	return stiffness, damping, mass, 0, false
}

// Next samples the spring at elapsed milliseconds.
//
// A duration-configured spring is done once elapsed reaches the resolved
// duration. A physics-configured spring is done once both its estimated
// velocity drops below RestSpeed and its displacement from target drops
// below RestDelta. Once done, the value is pinned exactly to target.
func (s *Spring) Next(elapsed float64) *Result[float64] {
	current := s.resolve(elapsed)

	if !s.durationResolved {
		currentVelocity := 0.0
		if elapsed == 0 {
			currentVelocity = s.initialVelocity
		}
		if s.dampingRatio < 1 {
			if elapsed == 0 {
				currentVelocity = s.initialVelocity * 1000
			} else {
				currentVelocity = EstimateVelocity(s.resolve, elapsed, current)
			}
		}
		belowVelocity := math.Abs(currentVelocity) <= s.restSpeed
		belowDisplacement := math.Abs(s.target-current) <= s.restDelta
		s.state.Done = belowVelocity && belowDisplacement
	} else {
		s.state.Done = elapsed >= s.duration
	}

	if s.state.Done {
		s.state.Value = s.target
	} else {
		s.state.Value = current
	}
	return &s.state
}

// CalculatedDuration returns the resolved duration for springs
// configured by duration or bounce, and ok=false for physics-configured
// springs, which settle by rest thresholds instead.
func (s *Spring) CalculatedDuration() (float64, bool) {
	if s.durationResolved && s.duration > 0 {
		return s.duration, true
	}
	return 0, false
}

// FindSpring solver bounds.
const (
	findSpringSafeMin = 0.001
	minSpringDuration = 0.01 // seconds
	maxSpringDuration = 10.0 // seconds
	minDampingRatio   = 0.05
	maxDampingRatio   = 1.0
	rootIterations    = 12
)

// FindSpring converts perceptual Duration/Bounce options into physical
// stiffness and damping using Newton's method on the spring's decay
// envelope. Duration is clamped to [10ms, 10s] and the damping ratio
// derived from Bounce to [0.05, 1]. The returned duration is the clamped
// duration in milliseconds.
//
// If the root solve fails to converge the default stiffness and damping
// are returned and the failure is reported as a numeric error.
func FindSpring(opts SpringOptions) (stiffness, damping, duration float64) {
	durationMs := opts.Duration
	if durationMs == 0 {
		durationMs = DefaultDuration
	}
	bounce := DefaultBounce
	if opts.Bounce != nil {
		bounce = *opts.Bounce
	}
	mass := opts.Mass
	if mass == 0 {
		mass = DefaultMass
	}
	// The envelope runs in the closed forms' millisecond convention, so
	// the velocity scales the same way as in NewSpring.
	velocity := -opts.Velocity / 1000

	if durationMs > maxSpringDuration*1000 {
		errors.Warnf("generators.FindSpring",
			"spring duration %.0fms exceeds the %.0fs maximum, clamping", durationMs, maxSpringDuration)
	}

	dampingRatio := clamp(minDampingRatio, maxDampingRatio, 1-bounce)
	durationSec := clamp(minSpringDuration, maxSpringDuration, durationMs/1000)

	var envelope, derivative func(float64) float64
	if dampingRatio < 1 {
		envelope = func(undampedFreq float64) float64 {
			exponentialDecay := undampedFreq * dampingRatio
			delta := exponentialDecay * durationSec
			a := exponentialDecay - velocity
			b := calcAngularFreq(undampedFreq, dampingRatio)
			c := math.Exp(-delta)
			return findSpringSafeMin - (a/b)*c
		}
		derivative = func(undampedFreq float64) float64 {
			exponentialDecay := undampedFreq * dampingRatio
			delta := exponentialDecay * durationSec
			d1 := delta*velocity + velocity
			d2 := math.Pow(dampingRatio, 2) * math.Pow(undampedFreq, 2) * durationSec
			d3 := math.Exp(-delta)
			d4 := calcAngularFreq(math.Pow(undampedFreq, 2), dampingRatio)
			factor := 1.0
			if -envelope(undampedFreq)+findSpringSafeMin > 0 {
				factor = -1.0
			}
			return (factor * ((d1 - d2) * d3)) / d4
		}
	} else {
		envelope = func(undampedFreq float64) float64 {
			a := math.Exp(-undampedFreq * durationSec)
			b := (undampedFreq-velocity)*durationSec + 1
			return -findSpringSafeMin + a*b
		}
		derivative = func(undampedFreq float64) float64 {
			a := math.Exp(-undampedFreq * durationSec)
			b := (velocity - undampedFreq) * (durationSec * durationSec)
			return a * b
		}
	}

	initialGuess := 5 / durationSec
	undampedFreq := approximateRoot(envelope, derivative, initialGuess)

	duration = durationSec * 1000
	if math.IsNaN(undampedFreq) {
		errors.Report(&errors.Error{
			Op:   "generators.FindSpring",
			Kind: errors.KindNumeric,
			Err: fmt.Errorf("root solve diverged for duration=%.0fms bounce=%.2f, using default physics",
				durationMs, bounce),
		})
		return DefaultStiffness, DefaultDamping, duration
	}

	stiffness = math.Pow(undampedFreq, 2) * mass
	damping = dampingRatio * 2 * math.Sqrt(mass*stiffness)
	return stiffness, damping, duration
}

// approximateRoot runs a fixed number of Newton iterations. The envelope
// functions are smooth enough that convergence checks are unnecessary.
func approximateRoot(envelope, derivative func(float64) float64, initialGuess float64) float64 {
	result := initialGuess
	for i := 1; i < rootIterations; i++ {
		result = result - envelope(result)/derivative(result)
	}
	return result
}

func calcAngularFreq(undampedFreq, dampingRatio float64) float64 {
	return undampedFreq * math.Sqrt(1-dampingRatio*dampingRatio)
}
