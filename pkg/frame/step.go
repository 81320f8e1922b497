package frame

// taskBuffer is an insertion-ordered set of tasks.
type taskBuffer struct {
	order   []*Task
	members map[*Task]struct{}
}

func newTaskBuffer() *taskBuffer {
	return &taskBuffer{members: make(map[*Task]struct{})}
}

func (b *taskBuffer) add(t *Task) {
	if _, ok := b.members[t]; ok {
		return
	}
	b.members[t] = struct{}{}
	b.order = append(b.order, t)
}

func (b *taskBuffer) remove(t *Task) {
	if _, ok := b.members[t]; !ok {
		return
	}
	delete(b.members, t)
	for i, task := range b.order {
		if task == t {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *taskBuffer) clear() {
	b.order = b.order[:0]
	clear(b.members)
}

// step holds the double-buffered task queues for one phase.
//
// Two buffers are swapped, never copied, between frames: tasks scheduled
// during a pass land in nextFrame and run on the following frame, except
// immediate tasks which join the executing buffer and run in the same
// pass.
type step struct {
	// flagRunNextFrame tells the scheduler another frame is needed,
	// without forcing the default first-frame delta.
	flagRunNextFrame func()

	thisFrame *taskBuffer
	nextFrame *taskBuffer
	keepAlive map[*Task]struct{}

	processing bool
	flushNext  bool
	latest     Data
}

func newStep(flagRunNextFrame func()) *step {
	return &step{
		flagRunNextFrame: flagRunNextFrame,
		thisFrame:        newTaskBuffer(),
		nextFrame:        newTaskBuffer(),
		keepAlive:        make(map[*Task]struct{}),
	}
}

func (st *step) schedule(t *Task, keepAlive, immediate bool) {
	if keepAlive {
		st.keepAlive[t] = struct{}{}
	}
	buffer := st.nextFrame
	if immediate && st.processing {
		buffer = st.thisFrame
	}
	buffer.add(t)
}

// cancel removes the task from the pending queue. It has no effect on the
// executing pass: a task already picked up this frame still runs.
func (st *step) cancel(t *Task) {
	st.nextFrame.remove(t)
	delete(st.keepAlive, t)
}

func (st *step) process(data Data) {
	st.latest = data
	if st.processing {
		st.flushNext = true
		return
	}
	st.processing = true

	st.thisFrame, st.nextFrame = st.nextFrame, st.thisFrame
	st.nextFrame.clear()

	// Iterating by index picks up immediate tasks appended mid-pass.
	for i := 0; i < len(st.thisFrame.order); i++ {
		t := st.thisFrame.order[i]
		if _, ok := st.keepAlive[t]; ok {
			// Re-enqueue before running so the callback may cancel itself.
			st.schedule(t, false, false)
			st.flagRunNextFrame()
		}
		t.fn(st.latest)
	}

	st.processing = false
	if st.flushNext {
		st.flushNext = false
		st.process(data)
	}
}
