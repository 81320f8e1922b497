package generators

import (
	"math"

	"github.com/go-drift/motion/pkg/errors"
)

// Inertia generator defaults.
const (
	DefaultPower           = 0.8
	DefaultTimeConstant    = 325.0 // ms
	DefaultBounceStiffness = 500.0
	DefaultBounceDamping   = 10.0
	DefaultInertiaRest     = 0.5
)

// InertiaOptions configures an Inertia generator.
type InertiaOptions struct {
	// Keyframes holds the origin. Inertia derives its own target from
	// velocity; passing more than one keyframe is an error.
	Keyframes []float64

	// Velocity is the initial velocity in units per second, typically
	// taken from the gesture that released the value.
	Velocity float64

	// Power scales how far the velocity carries the value. Defaults to
	// 0.8.
	Power float64
	// TimeConstant sets the friction decay rate in milliseconds; higher
	// values glide longer. Defaults to 325.
	TimeConstant float64

	// Min and Max bound the value. When the friction trajectory crosses
	// a boundary, the generator hands off to a spring that catches the
	// value at it. nil leaves that side unbounded.
	Min *float64
	Max *float64
	// BounceStiffness and BounceDamping configure the catching spring.
	// They default to 500 and 10.
	BounceStiffness float64
	BounceDamping   float64

	// ModifyTarget adjusts the computed resting target, for example to
	// snap it to a grid. Applied before boundary checks.
	ModifyTarget func(target float64) float64

	// RestDelta is the remaining decay distance below which the friction
	// phase completes. Defaults to 0.5.
	RestDelta float64
	// RestSpeed is passed through to the catching spring.
	RestSpeed float64
}

// Inertia generates an exponential friction glide from an initial
// velocity, optionally catching the value on a boundary spring. This is
// the generator behind momentum scrolling and flick-to-dismiss.
type Inertia struct {
	state Result[float64]

	target       float64
	amplitude    float64
	timeConstant float64
	restDelta    float64

	min, max        *float64
	bounceStiffness float64
	bounceDamping   float64
	restSpeed       float64

	// Once the friction trajectory leaves the bounds, boundarySpring
	// takes over from boundaryTime with the crossing velocity.
	boundarySpring *Spring
	boundaryTime   float64
	caught         bool
}

// NewInertia creates an inertia generator starting from the single
// origin keyframe.
func NewInertia(opts InertiaOptions) *Inertia {
	kfs := opts.Keyframes
	errors.Invariant(len(kfs) == 1, "generators.NewInertia",
		"inertia derives its target from velocity and takes exactly one keyframe, got %d", len(kfs))
	origin := 0.0
	if len(kfs) > 0 {
		origin = kfs[0]
	}

	power := opts.Power
	if power == 0 {
		power = DefaultPower
	}
	timeConstant := opts.TimeConstant
	if timeConstant == 0 {
		timeConstant = DefaultTimeConstant
	}
	restDelta := opts.RestDelta
	if restDelta == 0 {
		restDelta = DefaultInertiaRest
	}
	bounceStiffness := opts.BounceStiffness
	if bounceStiffness == 0 {
		bounceStiffness = DefaultBounceStiffness
	}
	bounceDamping := opts.BounceDamping
	if bounceDamping == 0 {
		bounceDamping = DefaultBounceDamping
	}

	amplitude := power * opts.Velocity
	ideal := origin + amplitude
	target := ideal
	if opts.ModifyTarget != nil {
		target = opts.ModifyTarget(ideal)
	}
	if target != ideal {
		amplitude = target - origin
	}

	g := &Inertia{
		state:           Result[float64]{Value: origin},
		target:          target,
		amplitude:       amplitude,
		timeConstant:    timeConstant,
		restDelta:       restDelta,
		min:             opts.Min,
		max:             opts.Max,
		bounceStiffness: bounceStiffness,
		bounceDamping:   bounceDamping,
		restSpeed:       opts.RestSpeed,
	}
	// The origin itself may already be out of bounds, in which case the
	// spring takes over from t=0 with the full initial velocity.
	g.catchBoundary(0)
	return g
}

func (g *Inertia) decayDelta(t float64) float64 {
	return -g.amplitude * math.Exp(-t/g.timeConstant)
}

func (g *Inertia) decayValue(t float64) float64 {
	return g.target + g.decayDelta(t)
}

func (g *Inertia) applyFriction(t float64) {
	delta := g.decayDelta(t)
	g.state.Done = math.Abs(delta) <= g.restDelta
	if g.state.Done {
		g.state.Value = g.target
	} else {
		g.state.Value = g.target + delta
	}
}

func (g *Inertia) outOfBounds(v float64) bool {
	return (g.min != nil && v < *g.min) || (g.max != nil && v > *g.max)
}

func (g *Inertia) nearestBoundary(v float64) float64 {
	if g.min == nil {
		return *g.max
	}
	if g.max == nil {
		return *g.min
	}
	if math.Abs(*g.min-v) < math.Abs(*g.max-v) {
		return *g.min
	}
	return *g.max
}

// catchBoundary hands off to the boundary spring if the current value
// has left the bounds, seeding it with the friction velocity at the
// crossing instant so the motion stays continuous.
func (g *Inertia) catchBoundary(t float64) {
	if !g.outOfBounds(g.state.Value) {
		return
	}
	g.caught = true
	g.boundaryTime = t
	g.boundarySpring = NewSpring(SpringOptions{
		Keyframes: []float64{g.state.Value, g.nearestBoundary(g.state.Value)},
		Velocity:  EstimateVelocity(g.decayValue, t, g.state.Value),
		Damping:   g.bounceDamping,
		Stiffness: g.bounceStiffness,
		RestDelta: g.restDelta,
		RestSpeed: g.restSpeed,
	})
}

// Next samples the glide at elapsed milliseconds. Friction is done when
// the remaining decay distance falls below RestDelta; after a boundary
// hand-off, done follows the catching spring.
func (g *Inertia) Next(elapsed float64) *Result[float64] {
	updatedFrame := false
	if !g.caught {
		updatedFrame = true
		g.applyFriction(elapsed)
		g.catchBoundary(elapsed)
	}
	// Samples at or before the hand-off replay the friction trajectory.
	if g.caught && elapsed > g.boundaryTime {
		return g.boundarySpring.Next(elapsed - g.boundaryTime)
	}
	if !updatedFrame {
		g.applyFriction(elapsed)
	}
	return &g.state
}

// CalculatedDuration reports ok=false: inertia settles by thresholds.
func (g *Inertia) CalculatedDuration() (float64, bool) {
	return 0, false
}
