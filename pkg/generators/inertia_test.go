package generators

import (
	"math"
	"testing"
)

func TestInertiaDerivesTargetFromVelocity(t *testing.T) {
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{100},
		Velocity:  500,
	})

	if res := g.Next(0); res.Value != 100 || res.Done {
		t.Fatalf("Next(0) = (%v, %v), want (100, false)", res.Value, res.Done)
	}
	// Default power 0.8 projects 100 + 0.8*500 = 500.
	if res := g.Next(10000); !res.Done || res.Value != 500 {
		t.Errorf("Next(10000) = (%v, %v), want settled at 500", res.Value, res.Done)
	}
}

func TestInertiaDecaysMonotonically(t *testing.T) {
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{0},
		Velocity:  500,
	})
	target := 0.8 * 500
	prev := g.Next(0).Value
	for ts := 50.0; ts <= 3000; ts += 50 {
		res := g.Next(ts)
		if res.Value < prev || res.Value > target {
			t.Fatalf("at t=%v: value %v left the monotonic approach from %v toward %v", ts, res.Value, prev, target)
		}
		prev = res.Value
	}
}

func TestInertiaModifyTarget(t *testing.T) {
	snap := func(target float64) float64 { return math.Round(target/100) * 100 }
	g := NewInertia(InertiaOptions{
		Keyframes:    []float64{100},
		Velocity:     480, // ideal target 484 snaps to 500
		ModifyTarget: snap,
	})

	if res := g.Next(0); res.Value != 100 {
		t.Errorf("Next(0) = %v, want the origin 100", res.Value)
	}
	if res := g.Next(10000); !res.Done || res.Value != 500 {
		t.Errorf("Next(10000) = (%v, %v), want settled at the snapped 500", res.Value, res.Done)
	}
}

func TestInertiaRestThreshold(t *testing.T) {
	// Amplitude 400 with the default 325ms time constant leaves more
	// than the 0.5 rest delta at t=2100 and less at t=2200.
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{100},
		Velocity:  500,
	})
	if res := g.Next(2100); res.Done {
		t.Errorf("Next(2100) = (%v, done), want still gliding", res.Value)
	}
	if res := g.Next(2200); !res.Done || res.Value != 500 {
		t.Errorf("Next(2200) = (%v, %v), want settled exactly at 500", res.Value, res.Done)
	}
}

func TestInertiaBoundarySpringCatch(t *testing.T) {
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{0},
		Velocity:  1000, // glide target 800, well past the boundary
		Max:       Float(300),
	})

	overshot := false
	settled := false
	var finalValue float64
	for ts := 0.0; ts <= 10000; ts += 10 {
		res := g.Next(ts)
		if res.Value > 300 {
			overshot = true
		}
		if res.Done {
			settled = true
			finalValue = res.Value
			break
		}
	}

	if !overshot {
		t.Error("trajectory never crossed the boundary before the spring caught it")
	}
	if !settled {
		t.Fatal("boundary spring never settled")
	}
	if finalValue != 300 {
		t.Errorf("settled at %v, want the boundary 300", finalValue)
	}
}

func TestInertiaBoundaryHandOffIsContinuous(t *testing.T) {
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{0},
		Velocity:  1000,
		Max:       Float(300),
	})

	prev := g.Next(0).Value
	for ts := 5.0; ts <= 1000; ts += 5 {
		res := g.Next(ts)
		// 1000 units/sec over a 5ms step moves at most ~5 units plus
		// spring acceleration. A jump larger than that means the spring
		// was seeded discontinuously.
		if math.Abs(res.Value-prev) > 25 {
			t.Fatalf("value jumped from %v to %v at t=%v", prev, res.Value, ts)
		}
		prev = res.Value
	}
}

func TestInertiaStartsOutOfBounds(t *testing.T) {
	g := NewInertia(InertiaOptions{
		Keyframes: []float64{400},
		Velocity:  0,
		Max:       Float(300),
	})

	settled := false
	var finalValue float64
	for ts := 10.0; ts <= 10000; ts += 50 {
		if res := g.Next(ts); res.Done {
			settled = true
			finalValue = res.Value
			break
		}
	}
	if !settled {
		t.Fatal("spring never pulled the value back in bounds")
	}
	if finalValue != 300 {
		t.Errorf("settled at %v, want the boundary 300", finalValue)
	}
}

func TestInertiaDurationIsUnknown(t *testing.T) {
	g := NewInertia(InertiaOptions{Keyframes: []float64{0}, Velocity: 100})
	if d, ok := g.CalculatedDuration(); ok {
		t.Errorf("CalculatedDuration = (%v, true), want unresolved", d)
	}
}
