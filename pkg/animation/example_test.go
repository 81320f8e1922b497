package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/generators"
	"github.com/go-drift/motion/pkg/motion"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

// This example shows how to play a tween and observe its values.
func ExampleNew() {
	clock := motiontest.NewFakeClock()
	sched := frame.NewScheduler(clock, nil)
	driver, crank := motiontest.NewManualDriver()

	animation.New(animation.Options[float64]{
		Keyframes: animation.Values(0.0, 100.0),
		Transition: animation.Transition{
			Duration: 200 * time.Millisecond,
			Ease:     easing.Linear,
			Driver:   driver,
		},
		Scheduler: sched,
		OnUpdate: func(v float64) {
			fmt.Printf("value: %.0f\n", v)
		},
		OnComplete: func() {
			fmt.Println("complete")
		},
	})

	crank.Frame(2, 100)

	// Output:
	// value: 50
	// value: 100
	// complete
}

// This example shows how to animate a motion value with a spring.
func ExampleAnimateValue() {
	x := motion.NewValue(0.0)

	// Values and animations belong to the loop goroutine; reach them
	// through Dispatch.
	frame.Default().Dispatch(func() {
		animation.AnimateValue(x, animation.Options[float64]{
			Keyframes:  animation.FromCurrentTo(240.0),
			Transition: animation.Transition{Type: animation.TypeSpring},
		})
	})
}

// This example shows how nil keyframes resolve from a value's state.
func ExampleNewResolver() {
	x := motion.NewValue(5.0)

	keyframes := animation.FromCurrentTo(50.0, 100.0)
	r := animation.NewResolver(keyframes, func(resolved []float64, _ *float64) {
		fmt.Println(resolved)
	}, animation.ResolverConfig[float64]{Value: x})
	r.ScheduleResolve()

	// Output:
	// [5 50 100]
}

// This example shows how to control several animations as one.
func ExampleGroup() {
	clock := motiontest.NewFakeClock()
	sched := frame.NewScheduler(clock, nil)

	fade := animation.New(animation.Options[float64]{
		Keyframes:  animation.Values(1.0, 0.0),
		Transition: animation.Transition{Duration: 150 * time.Millisecond},
		Scheduler:  sched,
	})
	slide := animation.New(animation.Options[float64]{
		Keyframes:  animation.Values(0.0, -80.0),
		Transition: animation.Transition{Duration: 400 * time.Millisecond},
		Scheduler:  sched,
	})

	exit := animation.NewGroup(fade, slide)
	fmt.Printf("duration: %.0fms\n", exit.Duration())
	fmt.Println("state:", exit.State())

	exit.Pause()
	fmt.Println("state:", exit.State())

	// Output:
	// duration: 400ms
	// state: running
	// state: paused
}

// This example shows how a custom generator plugs into a transition.
func ExampleGeneratorFactory() {
	clock := motiontest.NewFakeClock()
	sched := frame.NewScheduler(clock, nil)
	driver, crank := motiontest.NewManualDriver()

	// A constant-rate generator: 1 unit per millisecond toward the
	// final keyframe.
	linear := func(kfs []float64, velocity float64, t animation.Transition) generators.Generator[float64] {
		return generators.NewKeyframes(generators.KeyframesOptions[float64]{
			Keyframes: kfs,
			Duration:  kfs[len(kfs)-1] - kfs[0],
			Ease:      easing.Linear,
		})
	}

	animation.New(animation.Options[float64]{
		Keyframes:  animation.Values(0.0, 50.0),
		Transition: animation.Transition{Generator: linear, Driver: driver},
		Scheduler:  sched,
		OnUpdate: func(v float64) {
			fmt.Printf("value: %.0f\n", v)
		},
	})

	crank.Frame(2, 25)

	// Output:
	// value: 25
	// value: 50
}
