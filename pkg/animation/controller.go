// Package animation runs keyframe animations against the frame loop.
//
// An Animation owns the full playback lifecycle of one value: it
// resolves keyframes (synchronously, or batched through a ResolverQueue
// when an Instance or Measurer is involved), builds a generator from
// its Transition, and ticks that generator from a driver until the
// animation settles, is stopped, or is cancelled.
//
// # Basic Usage
//
//	x := motion.NewValue(0.0)
//	anim := animation.AnimateValue(x, animation.Options[float64]{
//		Keyframes:  animation.Values(0.0, 100.0),
//		Transition: animation.Transition{Type: animation.TypeSpring},
//	})
//	<-anim.Done()
//
// Several animations can be driven as one with a Group.
package animation

import (
	"math"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/generators"
	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/valuetypes"
)

// State is the playback lifecycle of an animation.
//
//	         Play()                   tick past end
//	idle ────────────► running ───────────────────► finished
//	                    │    ▲                          │
//	             Pause()│    │Play()                    │Play() replays
//	                    ▼    │                          ▼
//	                    paused                       running
//
// Stop and Cancel return any state to idle.
type State uint8

const (
	// StateIdle means playback has not started or was torn down.
	StateIdle State = iota
	// StateRunning means a driver is ticking the animation.
	StateRunning
	// StatePaused means playback is frozen at a hold time.
	StatePaused
	// StateFinished means playback ran past its total duration.
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// PlaybackControls is the control surface shared by a single Animation
// and a Group. Times are in milliseconds of playback time.
type PlaybackControls interface {
	// Play starts or resumes playback. Playing a finished animation
	// replays it.
	Play()
	// Pause freezes playback at the current time.
	Pause()
	// Stop permanently halts playback without touching the value and
	// tears down the driver.
	Stop()
	// Cancel rewinds to the initial state, then tears down. Unlike Stop,
	// the animation can be played again.
	Cancel()
	// Complete snaps playback to its end state.
	Complete()
	// Time returns the current playback time.
	Time() float64
	// SetTime seeks to a playback time.
	SetTime(ms float64)
	// Speed returns the playback rate multiplier.
	Speed() float64
	// SetSpeed changes the playback rate without jumping in time.
	// Negative speeds play backwards.
	SetSpeed(speed float64)
	// Duration returns one iteration's duration, excluding delay and
	// repeats. Zero until keyframes resolve.
	Duration() float64
	// StartTime returns the driver timestamp playback is anchored to.
	StartTime() (float64, bool)
	// State returns the playback state.
	State() State
	// Done returns a channel that is closed when the current playback
	// cycle completes, stops, or is cancelled. Every animation closes it
	// eventually, even ones that never animate.
	Done() <-chan struct{}
}

// Options configures one animation. At minimum Keyframes must be set.
type Options[T comparable] struct {
	// Keyframes is the sequence to animate through. nil entries mean
	// "from current" at index 0 and "hold the previous keyframe"
	// elsewhere; see Values and FromCurrentTo.
	Keyframes []*T

	// Transition selects and tunes the generator.
	Transition Transition

	// Name identifies the animated property for instance reads and
	// diagnostics.
	Name string

	// Velocity seeds physics generators, in units per second.
	Velocity float64

	// Mixer blends non-numeric keyframes. Defaults to the composite
	// value mixer for strings.
	Mixer generators.MixerFactory[T]

	// Value supplies "from current" keyframes and receives resolved
	// origins. AnimateValue sets it and also routes OnUpdate writes.
	Value *motion.Value[T]
	// Instance is read for origin keyframes the value cannot supply.
	// Setting it defers resolution to the batched frame passes.
	Instance Instance[T]
	// Measurer opts keyframe resolution into the batched measurement
	// flush. Setting it defers resolution like Instance does.
	Measurer Measurer[T]

	// Scheduler runs resolution and the default driver. Defaults to the
	// value's scheduler, then the shared loop's.
	Scheduler *frame.Scheduler

	// StartTime anchors playback at an explicit driver timestamp in
	// milliseconds instead of the construction-time heuristic.
	StartTime *float64

	// OnUpdate receives every sampled value.
	OnUpdate func(T)
	// OnPlay fires when playback starts or resumes.
	OnPlay func()
	// OnComplete fires when playback settles at its end state.
	OnComplete func()
	// OnRepeat fires when playback crosses into a new iteration, at most
	// once per frame.
	OnRepeat func()
	// OnStop fires when the animation is stopped.
	OnStop func()

	// onFinished runs whenever the animation signals completion, stop or
	// cancel. AnimateValue uses it to release value ownership inside the
	// same call stack.
	onFinished func()
}

// Values builds a fully specified keyframe list.
func Values[T comparable](values ...T) []*T {
	out := make([]*T, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// FromCurrentTo builds a keyframe list whose origin resolves from the
// animated value's current state.
func FromCurrentTo[T comparable](targets ...T) []*T {
	out := make([]*T, len(targets)+1)
	for i := range targets {
		out[i+1] = &targets[i]
	}
	return out
}

// maxResolveDelay is how long resolution may lag construction, in
// milliseconds, before playback anchors to the resolve time instead.
// Within it, animations stay synchronized with others created in the
// same frame.
const maxResolveDelay = 40.0

// Animation plays resolved keyframes through a generator. Create one
// with New or AnimateValue. Methods must be called from the scheduler's
// goroutine; an Animation is not safe for concurrent use.
type Animation[T comparable] struct {
	opts Options[T]

	sched    *frame.Scheduler
	resolver *Resolver[T]

	createdAt     float64
	resolvedAt    float64
	hasResolvedAt bool

	// Set once resolution and playback init succeed.
	resolved  bool
	keyframes []T
	final     *T
	instant   bool

	gen              generators.Generator[T]
	mirrored         generators.Generator[T]
	calculated       float64
	resolvedDuration float64
	totalDuration    float64

	state        State
	pendingState State
	stopped      bool

	driver frame.Driver
	// Exactly one of startTime and holdTime is set while playback is
	// live: holding pins currentTime, otherwise the driver ticks it
	// forward from startTime.
	startTime     *float64
	holdTime      *float64
	cancelTime    *float64
	currentTime   float64
	speed         float64
	lastIteration int

	done         chan struct{}
	doneSignaled bool
}

var _ PlaybackControls = (*Animation[float64])(nil)

// New creates an animation over opts. Keyframes resolve synchronously
// unless an Instance or Measurer defers them to the next frame's
// batched passes; playback then starts automatically unless the
// transition's Autoplay is false.
func New[T comparable](opts Options[T]) *Animation[T] {
	a := &Animation[T]{
		opts:         opts,
		speed:        1,
		pendingState: StateRunning,
		done:         make(chan struct{}),
	}

	a.sched = opts.Scheduler
	if a.sched == nil {
		if opts.Value != nil {
			a.sched = opts.Value.Scheduler()
		} else {
			a.sched = frame.Default().Scheduler()
		}
	}
	a.createdAt = a.sched.Now()

	async := opts.Instance != nil || opts.Measurer != nil
	a.resolver = NewResolver(opts.Keyframes, a.onKeyframesResolved, ResolverConfig[T]{
		Value:    opts.Value,
		Instance: opts.Instance,
		Name:     opts.Name,
		Measurer: opts.Measurer,
		Async:    async,
		Queue:    QueueFor(a.sched),
	})
	a.resolver.ScheduleResolve()
	return a
}

func (a *Animation[T]) onKeyframesResolved(keyframes []T, final *T) {
	a.resolvedAt = a.sched.Now()
	a.hasResolvedAt = true
	a.keyframes = keyframes
	a.final = final

	if len(keyframes) == 0 {
		a.signalDone()
		return
	}

	// Keyframes that cannot be animated complete immediately, or play
	// out their delay and then jump.
	if a.opts.Transition.Generator == nil && !a.canAnimate() {
		if a.opts.Transition.Delay <= 0 {
			if a.opts.OnUpdate != nil {
				a.opts.OnUpdate(a.finalValue())
			}
			if a.opts.OnComplete != nil {
				a.opts.OnComplete()
			}
			a.signalDone()
			return
		}
		a.instant = true
	}

	a.initPlayback()
	a.onPostResolved()
}

// canAnimate reports whether the resolved keyframes are worth running a
// generator over: the origin must exist, origin and target must agree
// on animatability, and something must actually change unless physics
// with velocity can move it anyway.
func (a *Animation[T]) canAnimate() bool {
	origin := a.keyframes[0]
	target := a.keyframes[len(a.keyframes)-1]
	if !defined(origin) {
		return false
	}

	originAnimatable := valuetypes.IsAnimatable(origin)
	targetAnimatable := valuetypes.IsAnimatable(target)
	if originAnimatable != targetAnimatable {
		errors.Warnf("animation.New",
			"cannot animate between %v and %v, value will switch at completion", origin, target)
	}
	if !originAnimatable || !targetAnimatable {
		return false
	}

	return a.keyframesChanged() || (a.opts.Transition.usesPhysics() && a.opts.Velocity != 0)
}

func (a *Animation[T]) keyframesChanged() bool {
	first := a.keyframes[0]
	for _, kf := range a.keyframes[1:] {
		if kf != first {
			return true
		}
	}
	return false
}

func (a *Animation[T]) initPlayback() {
	t := &a.opts.Transition

	a.gen, a.mirrored = a.buildGenerators()

	dur, known := a.gen.CalculatedDuration()
	if !known {
		dur = generators.CalcDuration(a.gen)
	}
	a.calculated = dur
	a.resolvedDuration = dur + t.repeatDelayMS()
	a.totalDuration = a.resolvedDuration*float64(t.Repeat+1) - t.repeatDelayMS()
	a.resolved = true
}

func (a *Animation[T]) onPostResolved() {
	a.Play()
	if a.pendingState == StatePaused || !a.opts.Transition.autoplay() {
		a.Pause()
	} else {
		a.state = a.pendingState
	}
}

// buildGenerators constructs the playback generator and, for mirror
// repeats, its reversed twin.
func (a *Animation[T]) buildGenerators() (gen, mirrored generators.Generator[T]) {
	t := &a.opts.Transition
	mirror := t.Repeat > 0 && t.RepeatType == RepeatMirror
	mixer := a.defaultMixer()

	if a.instant || !t.usesPhysics() {
		duration := t.tweenDurationMS()
		if a.instant {
			duration = 0
		}
		tween := func(kfs []T) generators.Generator[T] {
			return generators.NewKeyframes(generators.KeyframesOptions[T]{
				Keyframes: kfs,
				Duration:  duration,
				Times:     t.Times,
				Ease:      t.Ease,
				Eases:     t.Eases,
				Mixer:     mixer,
			})
		}
		gen = tween(a.keyframes)
		if mirror {
			mirrored = tween(reversedKeyframes(a.keyframes))
		}
		return gen, mirrored
	}

	var zero T
	if _, isFloat := any(zero).(float64); isFloat {
		kfs := keyframesAsFloats(a.keyframes)
		gen = floatGeneratorAs[T](a.buildPhysics(kfs, a.opts.Velocity))
		if mirror {
			mirrored = floatGeneratorAs[T](a.buildPhysics(reversedFloatKeyframes(kfs), -a.opts.Velocity))
		}
		return gen, mirrored
	}

	// Physics over non-numeric keyframes runs the generator across a
	// 0..100 progress range and mixes the pair with each sample.
	errors.Invariant(len(a.keyframes) == 2, "animation.New",
		"physics animations over non-numeric values take exactly two keyframes, got %d", len(a.keyframes))
	if mixer == nil {
		errors.Invariant(false, "animation.New",
			"no mixer for %T keyframes, jumping to the final value", zero)
		gen = generators.NewKeyframes(generators.KeyframesOptions[T]{
			Keyframes: a.keyframes,
			Duration:  0,
			Mixer:     holdMixer[T],
		})
		return gen, nil
	}

	mix := mixer(a.keyframes[0], a.keyframes[len(a.keyframes)-1])
	gen = &mappedGenerator[T]{
		inner: a.buildPhysics([]float64{0, 100}, a.opts.Velocity),
		mix:   mix,
	}
	if mirror {
		mirrored = &mappedGenerator[T]{
			inner: a.buildPhysics([]float64{100, 0}, -a.opts.Velocity),
			mix:   mix,
		}
	}
	return gen, mirrored
}

func (a *Animation[T]) buildPhysics(kfs []float64, velocity float64) generators.Generator[float64] {
	t := &a.opts.Transition
	if t.Generator != nil {
		return t.Generator(kfs, velocity, *t)
	}
	if t.Type == TypeSpring {
		return generators.NewSpring(generators.SpringOptions{
			Keyframes:      kfs,
			Velocity:       velocity,
			Stiffness:      t.Stiffness,
			Damping:        t.Damping,
			Mass:           t.Mass,
			Duration:       milliseconds(t.Duration),
			Bounce:         t.Bounce,
			VisualDuration: milliseconds(t.VisualDuration),
			RestSpeed:      t.RestSpeed,
			RestDelta:      t.RestDelta,
		})
	}
	return generators.NewInertia(generators.InertiaOptions{
		Keyframes:       kfs[:1],
		Velocity:        velocity,
		Power:           t.Power,
		TimeConstant:    t.TimeConstant,
		Min:             t.Min,
		Max:             t.Max,
		BounceStiffness: t.BounceStiffness,
		BounceDamping:   t.BounceDamping,
		ModifyTarget:    t.ModifyTarget,
		RestDelta:       t.RestDelta,
		RestSpeed:       t.RestSpeed,
	})
}

// defaultMixer returns the configured mixer, falling back to the
// composite value mixer for strings. float64 keyframes mix natively.
func (a *Animation[T]) defaultMixer() generators.MixerFactory[T] {
	if a.opts.Mixer != nil {
		return a.opts.Mixer
	}
	var zero T
	if _, ok := any(zero).(string); !ok {
		return nil
	}
	return func(from, to T) generators.Mixer[T] {
		mix := valuetypes.MixAny(any(from).(string), any(to).(string))
		return func(progress float64) T {
			return any(mix(progress)).(T)
		}
	}
}

// Tick advances the animation to a driver timestamp in milliseconds and
// returns the sampled value. Drivers call this once per frame.
func (a *Animation[T]) Tick(timestamp float64) T {
	value, _ := a.tick(timestamp, false)
	return value
}

// Sample evaluates the animation at a playback time without a driver,
// as if it had started at time zero.
func (a *Animation[T]) Sample(ms float64) (value T, done bool) {
	start := 0.0
	a.startTime = &start
	return a.tick(ms, true)
}

func (a *Animation[T]) tick(timestamp float64, sampling bool) (T, bool) {
	if !a.resolved {
		var zero T
		return zero, false
	}
	if a.startTime == nil {
		res := a.gen.Next(0)
		return res.Value, res.Done
	}

	t := &a.opts.Transition

	// Drivers may hand out timestamps earlier than the anchor chosen in
	// Play; rebase so elapsed time never goes negative.
	if a.speed > 0 {
		*a.startTime = math.Min(*a.startTime, timestamp)
	} else if a.speed < 0 {
		*a.startTime = math.Min(timestamp-a.totalDuration/a.speed, *a.startTime)
	}

	if sampling {
		a.currentTime = timestamp
	} else if a.holdTime != nil {
		a.currentTime = *a.holdTime
	} else {
		a.currentTime = math.Round(timestamp-*a.startTime) * a.speed
	}

	// Delay is consumed as negative time, flipped when playing backwards.
	delaySign := 1.0
	if a.speed < 0 {
		delaySign = -1
	}
	timeWithoutDelay := a.currentTime - t.delayMS()*delaySign
	var inDelayPhase bool
	if a.speed >= 0 {
		inDelayPhase = timeWithoutDelay < 0
	} else {
		inDelayPhase = timeWithoutDelay > a.totalDuration
	}
	a.currentTime = math.Max(timeWithoutDelay, 0)

	// A finished animation stays pinned to its end state.
	if a.state == StateFinished && a.holdTime == nil {
		a.currentTime = a.totalDuration
	}

	elapsed := a.currentTime
	gen := a.gen

	if t.Repeat > 0 && a.resolvedDuration > 0 && !math.IsInf(a.resolvedDuration, 1) {
		progress := math.Min(a.currentTime, a.totalDuration) / a.resolvedDuration
		iteration := int(math.Floor(progress))
		iterationProgress := math.Mod(progress, 1)
		if iterationProgress == 0 && progress >= 1 {
			iterationProgress = 1
		}
		if iterationProgress == 1 {
			iteration--
		}
		iteration = min(iteration, t.Repeat+1)

		if iteration%2 == 1 {
			switch t.RepeatType {
			case RepeatReverse:
				iterationProgress = 1 - iterationProgress
				if t.RepeatDelay > 0 {
					iterationProgress -= t.repeatDelayMS() / a.resolvedDuration
				}
			case RepeatMirror:
				gen = a.mirrored
			}
		}

		if iteration > a.lastIteration {
			if !sampling && a.state == StateRunning && iteration <= t.Repeat && a.opts.OnRepeat != nil {
				a.opts.OnRepeat()
			}
			a.lastIteration = iteration
		}

		elapsed = clamp01(iterationProgress) * a.resolvedDuration
	}

	var value T
	var done bool
	if inDelayPhase {
		value = a.keyframes[0]
	} else {
		res := gen.Next(elapsed)
		value = res.Value
		done = res.Done
	}

	if !inDelayPhase {
		if a.speed >= 0 {
			done = a.currentTime >= a.totalDuration
		} else {
			done = a.currentTime <= 0
		}
	}

	finished := a.holdTime == nil &&
		(a.state == StateFinished || (a.state == StateRunning && done))

	if finished && a.final != nil {
		value = a.finalValue()
	}

	if a.opts.OnUpdate != nil {
		a.opts.OnUpdate(value)
	}

	if finished {
		a.finish()
	}

	return value, done
}

// finalValue returns the keyframe playback settles on: the first when
// playing backwards or when an odd repeat count ends on a reversed
// iteration, otherwise the last, with the resolver's final override
// applied.
func (a *Animation[T]) finalValue() T {
	index := len(a.keyframes) - 1
	if a.speed < 0 {
		index = 0
	} else if a.opts.Transition.Repeat > 0 &&
		a.opts.Transition.RepeatType != RepeatLoop &&
		a.opts.Transition.Repeat%2 == 1 {
		index = 0
	}
	if index == 0 || a.final == nil {
		return a.keyframes[index]
	}
	return *a.final
}

// Play starts or resumes playback. Before keyframes resolve the request
// is remembered and honored once they do. Playing a finished or
// cancelled animation starts a fresh cycle with a new Done channel.
func (a *Animation[T]) Play() {
	if a.stopped {
		return
	}
	if !a.resolver.Scheduled() {
		a.resolver.Resume()
	}
	if !a.resolved {
		a.pendingState = StateRunning
		return
	}

	a.resetDone()

	if a.driver == nil {
		factory := a.opts.Transition.Driver
		if factory == nil {
			factory = frame.SchedulerDriver(a.sched)
		}
		a.driver = factory(func(timestamp float64) {
			a.tick(timestamp, false)
		})
	}

	if a.opts.OnPlay != nil {
		a.opts.OnPlay()
	}

	now := a.driver.Now()
	if a.holdTime != nil {
		start := now - *a.holdTime
		a.startTime = &start
	} else if a.startTime == nil {
		start := a.calcStartTime()
		if a.opts.StartTime != nil {
			start = *a.opts.StartTime
		}
		a.startTime = &start
	} else if a.state == StateFinished {
		// Replaying after Complete keeps the old anchor stale; restart
		// from the driver's present instead.
		a.startTime = &now
	}
	cancel := *a.startTime
	a.cancelTime = &cancel
	a.holdTime = nil
	a.state = StateRunning
	a.driver.Start()
}

// calcStartTime anchors playback at construction time so animations
// created in one frame stay in step, unless resolution lagged too far
// behind.
func (a *Animation[T]) calcStartTime() float64 {
	if !a.hasResolvedAt {
		return a.createdAt
	}
	if a.resolvedAt-a.createdAt > maxResolveDelay {
		return a.resolvedAt
	}
	return a.createdAt
}

// Pause freezes playback at the current time.
func (a *Animation[T]) Pause() {
	if !a.resolved {
		a.pendingState = StatePaused
		return
	}
	a.state = StatePaused
	hold := a.currentTime
	a.holdTime = &hold
}

// Stop permanently halts the animation without replaying its initial or
// final state. The Done channel closes; OnStop fires if playback had
// begun.
func (a *Animation[T]) Stop() {
	a.resolver.Cancel()
	a.stopped = true
	if a.state == StateIdle {
		a.signalDone()
		return
	}
	a.teardown()
	a.signalDone()
	if a.opts.OnStop != nil {
		a.opts.OnStop()
	}
}

// Cancel rewinds the animation to its initial state and tears down. The
// Done channel closes; Play starts a fresh cycle.
func (a *Animation[T]) Cancel() {
	if a.cancelTime != nil {
		a.tick(*a.cancelTime, false)
	}
	a.teardown()
	a.signalDone()
}

// Complete snaps playback to its end state on the next tick.
func (a *Animation[T]) Complete() {
	if a.state != StateRunning {
		a.Play()
	}
	a.pendingState = StateFinished
	a.state = StateFinished
	a.holdTime = nil
}

func (a *Animation[T]) finish() {
	a.teardown()
	a.state = StateFinished
	if a.opts.OnComplete != nil {
		a.opts.OnComplete()
	}
	a.signalDone()
}

func (a *Animation[T]) teardown() {
	a.state = StateIdle
	a.stopDriver()
	a.startTime = nil
	a.cancelTime = nil
	a.resolver.Cancel()
}

func (a *Animation[T]) stopDriver() {
	if a.driver == nil {
		return
	}
	a.driver.Stop()
	a.driver = nil
}

func (a *Animation[T]) signalDone() {
	if a.doneSignaled {
		return
	}
	a.doneSignaled = true
	close(a.done)
	if a.opts.onFinished != nil {
		a.opts.onFinished()
	}
}

func (a *Animation[T]) resetDone() {
	if a.doneSignaled {
		a.done = make(chan struct{})
		a.doneSignaled = false
	}
}

// Time returns the current playback time in milliseconds, after delay.
func (a *Animation[T]) Time() float64 {
	return a.currentTime
}

// SetTime seeks to ms. While paused, at zero speed, or before playback
// has anchored, the seek holds; otherwise playback is rebased so the
// next tick continues from ms.
func (a *Animation[T]) SetTime(ms float64) {
	a.currentTime = ms
	if a.startTime == nil || a.holdTime != nil || a.speed == 0 {
		hold := ms
		a.holdTime = &hold
	} else if a.driver != nil {
		start := a.driver.Now() - ms/a.speed
		a.startTime = &start
	}
}

// Speed returns the playback rate multiplier.
func (a *Animation[T]) Speed() float64 {
	return a.speed
}

// SetSpeed changes the playback rate, rebasing the start time so the
// current playback time is preserved.
func (a *Animation[T]) SetSpeed(speed float64) {
	if a.speed == speed {
		return
	}
	a.speed = speed
	a.SetTime(a.currentTime)
}

// Duration returns one iteration's duration in milliseconds. Zero until
// keyframes resolve; infinite for generators that never settle.
func (a *Animation[T]) Duration() float64 {
	if !a.resolved {
		return 0
	}
	return a.calculated
}

// StartTime returns the driver timestamp playback is anchored to, and
// whether playback is live.
func (a *Animation[T]) StartTime() (float64, bool) {
	if a.startTime == nil {
		return 0, false
	}
	return *a.startTime, true
}

// State returns the playback state.
func (a *Animation[T]) State() State {
	return a.state
}

// Done returns the channel closed when the current playback cycle
// completes, stops, or is cancelled.
func (a *Animation[T]) Done() <-chan struct{} {
	return a.done
}

// mappedGenerator runs a float generator across a 0..100 progress range
// and maps each sample through a mixer, which lets physics drive
// non-numeric keyframe pairs.
type mappedGenerator[T any] struct {
	inner generators.Generator[float64]
	mix   generators.Mixer[T]
	state generators.Result[T]
}

func (g *mappedGenerator[T]) Next(elapsed float64) *generators.Result[T] {
	res := g.inner.Next(elapsed)
	g.state.Value = g.mix(res.Value / 100)
	g.state.Done = res.Done
	return &g.state
}

func (g *mappedGenerator[T]) CalculatedDuration() (float64, bool) {
	return g.inner.CalculatedDuration()
}

// holdMixer snaps to the target at full progress, the fallback when no
// real mixer exists for a type.
func holdMixer[T any](from, to T) generators.Mixer[T] {
	return func(progress float64) T {
		if progress >= 1 {
			return to
		}
		return from
	}
}

func keyframesAsFloats[T comparable](kfs []T) []float64 {
	out := make([]float64, len(kfs))
	for i, kf := range kfs {
		out[i] = any(kf).(float64)
	}
	return out
}

func reversedFloatKeyframes(kfs []float64) []float64 {
	out := make([]float64, len(kfs))
	for i, kf := range kfs {
		out[len(kfs)-1-i] = kf
	}
	return out
}

func reversedKeyframes[T any](kfs []T) []T {
	out := make([]T, len(kfs))
	for i, kf := range kfs {
		out[len(kfs)-1-i] = kf
	}
	return out
}

// floatGeneratorAs rebinds a float64 generator to the animation's value
// type. Callers only reach it when T is float64.
func floatGeneratorAs[T comparable](g generators.Generator[float64]) generators.Generator[T] {
	return any(g).(generators.Generator[T])
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
