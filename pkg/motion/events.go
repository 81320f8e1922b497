package motion

// Event identifies one of the fixed lifecycle notifications a Value
// emits.
type Event uint8

const (
	// EventChange fires when the current value actually changed.
	EventChange Event = iota
	// EventRenderRequest fires on sets that want a repaint.
	EventRenderRequest
	// EventAnimationStart fires when an animation takes ownership.
	EventAnimationStart
	// EventAnimationComplete fires when an animation finishes naturally.
	EventAnimationComplete
	// EventAnimationCancel fires when an animation is stopped early.
	EventAnimationCancel

	numEvents int = iota
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventChange:
		return "change"
	case EventRenderRequest:
		return "renderRequest"
	case EventAnimationStart:
		return "animationStart"
	case EventAnimationComplete:
		return "animationComplete"
	case EventAnimationCancel:
		return "animationCancel"
	}
	return "unknown"
}

type listenerEntry[T any] struct {
	id int
	fn func(T)
}

// listenerList is an insertion-ordered subscription registry. Notify
// runs against a snapshot so listeners may unsubscribe themselves.
type listenerList[T any] struct {
	entries []listenerEntry[T]
	nextID  int
}

func (l *listenerList[T]) add(fn func(T)) int {
	l.nextID++
	l.entries = append(l.entries, listenerEntry[T]{id: l.nextID, fn: fn})
	return l.nextID
}

func (l *listenerList[T]) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *listenerList[T]) notify(v T) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(v)
	}
}

func (l *listenerList[T]) size() int {
	return len(l.entries)
}

func (l *listenerList[T]) clear() {
	l.entries = nil
}
