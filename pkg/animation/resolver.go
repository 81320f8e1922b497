package animation

import (
	"fmt"
	"sync"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/motion"
)

// Instance reads property values from an externally rendered target,
// the counterpart to an animation's writes. Resolvers consult it for
// origin keyframes the motion value cannot supply.
type Instance[T comparable] interface {
	// ReadValue returns the target's current value for a named property,
	// or ok=false when it has none.
	ReadValue(name string) (T, bool)
}

// Measurer performs the batched measurement passes for resolvers whose
// keyframes must be sampled from live layout. The queue calls the five
// passes grouped across all resolvers that need them, so layout is
// never read and written alternately.
type Measurer[T comparable] interface {
	// NeedsMeasurement reports whether the resolved keyframes still
	// require measurement before they can be interpolated.
	NeedsMeasurement(keyframes []T) bool
	// Strip removes properties that would skew measurement.
	Strip()
	// MeasureInitial samples the pre-animation state.
	MeasureInitial()
	// RenderEnd applies the end state so it can be sampled.
	RenderEnd()
	// MeasureEnd samples the rendered end state.
	MeasureEnd()
	// Restore reinstates stripped properties.
	Restore()
}

// ResolveFunc receives the resolved keyframes. final, when non-nil,
// overrides the last keyframe for end-state purposes; collaborators set
// it when they substituted a measurable stand-in during resolution.
type ResolveFunc[T comparable] func(keyframes []T, final *T)

// ResolverConfig wires a Resolver's collaborators. All fields are
// optional.
type ResolverConfig[T comparable] struct {
	// Value supplies "from current" origins and receives the substituted
	// origin when it had none of its own.
	Value *motion.Value[T]
	// Instance is consulted for an origin when the value cannot supply
	// one.
	Instance Instance[T]
	// Name is the property read from the instance.
	Name string
	// Measurer opts this resolver into the batched measurement flush.
	Measurer Measurer[T]
	// Async defers resolution to the scheduler's read and
	// resolveKeyframes phases via a queue. Synchronous resolvers
	// complete inside ScheduleResolve.
	Async bool
	// Queue is the batch joined when Async. Defaults to the shared
	// scheduler's queue.
	Queue *ResolverQueue
}

type resolveState uint8

const (
	resolvePending resolveState = iota
	resolveScheduled
	resolveComplete
)

// Resolver fills the nil entries of a keyframe sequence and delivers
// the result. A nil first entry resolves from the motion value's
// current, then the instance, then the final keyframe; later nil
// entries copy their predecessor. Resolution happens in place, so a
// scheduled resolver owns its slice until it completes.
type Resolver[T comparable] struct {
	unresolved []*T
	deliver    ResolveFunc[T]

	value    *motion.Value[T]
	instance Instance[T]
	name     string
	measurer Measurer[T]
	async    bool
	queue    *ResolverQueue

	state        resolveState
	final        *T
	needsMeasure bool
}

// NewResolver builds a resolver over keyframes that calls deliver once
// they are resolved. The slice is mutated in place.
func NewResolver[T comparable](keyframes []*T, deliver ResolveFunc[T], cfg ResolverConfig[T]) *Resolver[T] {
	queue := cfg.Queue
	if cfg.Async && queue == nil {
		queue = QueueFor(frame.Default().Scheduler())
	}
	return &Resolver[T]{
		unresolved: keyframes,
		deliver:    deliver,
		value:      cfg.Value,
		instance:   cfg.Instance,
		name:       cfg.Name,
		measurer:   cfg.Measurer,
		async:      cfg.Async,
		queue:      queue,
	}
}

// ScheduleResolve begins resolution. Synchronous resolvers read and
// complete inline; asynchronous ones join their queue's next batch.
func (r *Resolver[T]) ScheduleResolve() {
	r.state = resolveScheduled
	if r.async {
		r.queue.add(r)
		return
	}
	r.readKeyframes()
	r.Complete()
}

// Scheduled reports whether the resolver is waiting on a batch.
func (r *Resolver[T]) Scheduled() bool {
	return r.state == resolveScheduled
}

// Resolved reports whether resolution has completed.
func (r *Resolver[T]) Resolved() bool {
	return r.state == resolveComplete
}

// Cancel withdraws a scheduled resolver from its queue. Completed
// resolvers are unaffected.
func (r *Resolver[T]) Cancel() {
	if r.state != resolveScheduled {
		return
	}
	if r.async {
		r.queue.remove(r)
	}
	r.state = resolvePending
}

// Resume re-schedules a cancelled resolver. Scheduled or completed
// resolvers are unaffected.
func (r *Resolver[T]) Resume() {
	if r.state == resolvePending {
		r.ScheduleResolve()
	}
}

// SetFinalKeyframe overrides the keyframe reported as the animation's
// end state, for collaborators that substituted a stand-in during
// measurement.
func (r *Resolver[T]) SetFinalKeyframe(v T) {
	r.final = &v
}

// Complete delivers the resolved keyframes. Idempotent; repeat calls
// are ignored. Queued resolvers are completed by their queue, but
// callers may force completion early.
func (r *Resolver[T]) Complete() {
	if r.state == resolveComplete {
		return
	}
	r.state = resolveComplete
	if r.async {
		r.queue.remove(r)
	}
	r.deliver(r.resolvedValues(true), r.final)
}

func (r *Resolver[T]) readKeyframes() {
	kfs := r.unresolved
	if len(kfs) == 0 {
		errors.Report(&errors.Error{
			Op:   "animation.Resolver",
			Kind: errors.KindResolve,
			Err:  fmt.Errorf("cannot resolve an empty keyframe list"),
		})
		return
	}

	for i := range kfs {
		if kfs[i] != nil {
			continue
		}
		if i > 0 {
			// Holes inherit the previous keyframe.
			kfs[i] = kfs[i-1]
			continue
		}

		// A nil origin means "from current": take the value's current,
		// then the instance's, then fall back to the final keyframe.
		var origin *T
		if r.value != nil {
			if current := r.value.Get(); defined(current) {
				origin = &current
			}
		}
		if origin == nil && r.instance != nil {
			if read, ok := r.instance.ReadValue(r.name); ok {
				origin = &read
			}
		}
		if origin == nil {
			origin = kfs[len(kfs)-1]
		}
		kfs[0] = origin
		if origin != nil && r.value != nil && !defined(r.value.Get()) {
			r.value.Set(*origin)
		}
	}

	if r.measurer != nil {
		r.needsMeasure = r.measurer.NeedsMeasurement(r.resolvedValues(false))
	}
}

// resolvedValues snapshots the keyframes as values. Entries that are
// still nil after resolution are a data error and resolve to the zero
// value.
func (r *Resolver[T]) resolvedValues(report bool) []T {
	out := make([]T, len(r.unresolved))
	for i, kf := range r.unresolved {
		if kf == nil {
			if report {
				errors.Report(&errors.Error{
					Op:   "animation.Resolver",
					Kind: errors.KindResolve,
					Err:  fmt.Errorf("keyframe %d of %q could not be resolved", i, r.name),
				})
			}
			continue
		}
		out[i] = *kf
	}
	return out
}

func (r *Resolver[T]) resolverNeedsMeasurement() bool { return r.needsMeasure }
func (r *Resolver[T]) stripStyles()                   { r.measurer.Strip() }
func (r *Resolver[T]) measureInitial()                { r.measurer.MeasureInitial() }
func (r *Resolver[T]) renderEnd()                     { r.measurer.RenderEnd() }
func (r *Resolver[T]) measureEnd()                    { r.measurer.MeasureEnd() }
func (r *Resolver[T]) restore()                       { r.measurer.Restore() }

// defined reports whether a keyframe value is usable as an origin. Any
// concrete value is; only a nil interface is not.
func defined[T comparable](v T) bool {
	return any(v) != nil
}

// resolvable is the untyped face a Resolver shows its queue, so one
// queue can batch resolvers of different value types.
type resolvable interface {
	readKeyframes()
	resolverNeedsMeasurement() bool
	stripStyles()
	measureInitial()
	renderEnd()
	measureEnd()
	restore()
	Complete()
}

// ResolverQueue batches keyframe resolution on one scheduler. Resolvers
// join during ScheduleResolve; once per frame the queue reads every
// pending resolver's keyframes in the read phase, runs the grouped
// measurement passes in the resolve phase, then completes them all.
type ResolverQueue struct {
	sched *frame.Scheduler

	readTask    *frame.Task
	resolveTask *frame.Task

	pending      []resolvable
	scheduled    bool
	needsMeasure bool
}

func newResolverQueue(s *frame.Scheduler) *ResolverQueue {
	q := &ResolverQueue{sched: s}
	q.readTask = frame.NewTask(func(frame.Data) { q.readAll() })
	q.resolveTask = frame.NewTask(func(frame.Data) { q.measureAll() })
	return q
}

func (q *ResolverQueue) add(r resolvable) {
	q.pending = append(q.pending, r)
	if !q.scheduled {
		q.scheduled = true
		q.sched.Schedule(frame.PhaseRead, q.readTask, 0)
		q.sched.Schedule(frame.PhaseResolveKeyframes, q.resolveTask, 0)
	}
}

func (q *ResolverQueue) remove(r resolvable) {
	for i, p := range q.pending {
		if p == r {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *ResolverQueue) readAll() {
	for _, r := range q.pending {
		r.readKeyframes()
		if r.resolverNeedsMeasurement() {
			q.needsMeasure = true
		}
	}
}

func (q *ResolverQueue) measureAll() {
	if q.needsMeasure {
		measuring := make([]resolvable, 0, len(q.pending))
		for _, r := range q.pending {
			if r.resolverNeedsMeasurement() {
				measuring = append(measuring, r)
			}
		}
		// Write, read, write, read, write. Grouping the passes keeps
		// layout from thrashing between resolvers.
		for _, r := range measuring {
			r.stripStyles()
		}
		for _, r := range measuring {
			r.measureInitial()
		}
		for _, r := range measuring {
			r.renderEnd()
		}
		for _, r := range measuring {
			r.measureEnd()
		}
		for _, r := range measuring {
			r.restore()
		}
	}
	q.needsMeasure = false
	q.scheduled = false

	pending := q.pending
	q.pending = nil
	for _, r := range pending {
		r.Complete()
	}
}

// Flush resolves every pending resolver immediately instead of waiting
// for the scheduled frame passes.
func (q *ResolverQueue) Flush() {
	q.readAll()
	q.measureAll()
}

var (
	queueMu sync.Mutex
	queues  = map[*frame.Scheduler]*ResolverQueue{}
)

// QueueFor returns the resolver queue bound to s, creating it on first
// use. Each scheduler owns one queue so resolution batches per loop.
func QueueFor(s *frame.Scheduler) *ResolverQueue {
	queueMu.Lock()
	defer queueMu.Unlock()
	q, ok := queues[s]
	if !ok {
		q = newResolverQueue(s)
		queues[s] = q
	}
	return q
}
