package frame

// Data carries per-frame timing, shared by every callback in a pass.
// The scheduler mutates it once per frame and passes copies to callbacks.
type Data struct {
	// Delta is the time advanced since the previous frame, in milliseconds.
	Delta float64
	// Timestamp is the frame time in milliseconds on the scheduler clock.
	// The epoch is arbitrary; only differences are meaningful.
	Timestamp float64
	// IsProcessing reports whether a frame pass is currently executing.
	IsProcessing bool
}

// Callback is scheduled work that runs during a frame phase.
type Callback func(Data)

// Task wraps a Callback with a stable identity. Function values cannot be
// compared, so the *Task pointer is what the scheduler deduplicates and
// cancels by. Reuse the same Task to reschedule the same work.
type Task struct {
	fn Callback
}

// NewTask creates a schedulable task for fn.
func NewTask(fn Callback) *Task {
	return &Task{fn: fn}
}

// Phase identifies one step of the frame pass.
type Phase int

const (
	// PhaseRead batches measurements of current state.
	PhaseRead Phase = iota
	// PhaseResolveKeyframes finalizes pending keyframe resolution after
	// reads and before animation ticks.
	PhaseResolveKeyframes
	// PhaseUpdate runs animation ticks.
	PhaseUpdate
	// PhasePreRender runs work that must precede rendering.
	PhasePreRender
	// PhaseRender applies computed values to their outputs.
	PhaseRender
	// PhasePostRender runs cleanup after rendering.
	PhasePostRender

	numPhases int = iota
)

func (p Phase) String() string {
	switch p {
	case PhaseRead:
		return "read"
	case PhaseResolveKeyframes:
		return "resolveKeyframes"
	case PhaseUpdate:
		return "update"
	case PhasePreRender:
		return "preRender"
	case PhaseRender:
		return "render"
	case PhasePostRender:
		return "postRender"
	default:
		return "unknown"
	}
}

// Flag adjusts how a task is scheduled.
type Flag uint8

const (
	// KeepAlive re-enqueues the task for the next frame each time it
	// runs. The re-enqueue happens before the callback, so a task may
	// cancel itself.
	KeepAlive Flag = 1 << iota
	// Immediate runs the task within the current pass when its phase is
	// already processing.
	Immediate
)
