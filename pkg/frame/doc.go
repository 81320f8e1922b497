// Package frame provides the batching frame scheduler that drives the
// motion engine.
//
// # Frame Model
//
// Work is scheduled into named phases that execute in a fixed order once
// per frame:
//
//	Read -> ResolveKeyframes -> Update -> PreRender -> Render -> PostRender
//
// Batching work this way keeps reads ahead of writes within a frame, so
// measuring current state never interleaves with rendering new state.
// Animation ticks run in [PhaseUpdate]; output is applied in [PhaseRender].
//
// # Scheduling
//
// Callbacks are wrapped in a [Task], which serves as the identity for
// deduplication and cancellation:
//
//	task := frame.NewTask(func(d frame.Data) {
//	    fmt.Println(d.Timestamp)
//	})
//	sched.Schedule(frame.PhaseUpdate, task, frame.KeepAlive)
//	// ...
//	sched.Cancel(task)
//
// Scheduling the same task twice within one frame runs it once. Tasks
// scheduled with [KeepAlive] re-enqueue themselves each frame until
// cancelled. Tasks scheduled with [Immediate] while their phase is mid
// pass run within the current pass instead of waiting a frame.
//
// # Driving Frames
//
// A [Scheduler] does not advance on its own. [Loop] runs one on a
// dedicated goroutine, waking when work is scheduled and parking when
// idle. Tests drive a Scheduler directly by calling ProcessFrame with a
// controlled [Clock].
//
// All scheduler methods must be called from the goroutine that processes
// frames. Use [Loop.Dispatch] to enter the frame goroutine from outside.
package frame
