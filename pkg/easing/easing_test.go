package easing

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEndpointsForAllNamedEasings(t *testing.T) {
	for name, fn := range byName {
		if got := fn(0); !approx(got, 0, 1e-3) {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); !approx(got, 1, 1e-3) {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Linear(p); got != p {
			t.Errorf("Linear(%v) = %v", p, got)
		}
	}
}

func TestCubicBezierKnownValues(t *testing.T) {
	// A linear bezier must be the identity.
	linear := CubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, p := range []float64{0.1, 0.33, 0.5, 0.9} {
		if got := linear(p); !approx(got, p, 1e-5) {
			t.Errorf("linear bezier(%v) = %v, want %v", p, got, p)
		}
	}

	// EaseInOut is symmetric: f(p) + f(1-p) == 1.
	for _, p := range []float64{0.1, 0.2, 0.35, 0.5} {
		sum := EaseInOut(p) + EaseInOut(1-p)
		if !approx(sum, 1, 1e-5) {
			t.Errorf("EaseInOut(%v)+EaseInOut(%v) = %v, want 1", p, 1-p, sum)
		}
	}

	// Out of range input clamps.
	if got := EaseIn(-0.5); got != 0 {
		t.Errorf("EaseIn(-0.5) = %v, want 0", got)
	}
	if got := EaseIn(1.5); got != 1 {
		t.Errorf("EaseIn(1.5) = %v, want 1", got)
	}
}

func TestEaseInIsConvex(t *testing.T) {
	// Ease-in stays below the diagonal in the interior.
	for _, p := range []float64{0.2, 0.4, 0.6, 0.8} {
		if got := EaseIn(p); got >= p {
			t.Errorf("EaseIn(%v) = %v, want < %v", p, got, p)
		}
	}
}

func TestReverseRoundTrip(t *testing.T) {
	rev := Reverse(EaseIn)
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := 1 - EaseIn(1-p)
		if got := rev(p); !approx(got, want, 1e-9) {
			t.Errorf("Reverse(EaseIn)(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestMirrorIsSymmetric(t *testing.T) {
	m := Mirror(QuadIn)
	if got := m(0.5); !approx(got, 0.5, 1e-6) {
		t.Errorf("Mirror(QuadIn)(0.5) = %v, want 0.5", got)
	}
	for _, p := range []float64{0.1, 0.3, 0.45} {
		sum := m(p) + m(1-p)
		if !approx(sum, 1, 1e-5) {
			t.Errorf("mirrored easing not symmetric at %v: sum = %v", p, sum)
		}
	}
}

func TestBackOutOvershoots(t *testing.T) {
	overshot := false
	for p := 0.5; p < 1; p += 0.02 {
		if BackOut(p) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("BackOut never exceeded 1")
	}
}

func TestAnticipatePullsBack(t *testing.T) {
	dipped := false
	for p := 0.01; p < 0.5; p += 0.02 {
		if Anticipate(p) < 0 {
			dipped = true
			break
		}
	}
	if !dipped {
		t.Error("Anticipate never dipped below 0")
	}
	if got := Anticipate(1); !approx(got, 1, 1e-3) {
		t.Errorf("Anticipate(1) = %v, want 1", got)
	}
}

func TestStepsQuantizes(t *testing.T) {
	fn := Steps(4, false)
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.1, 0},
		{0.25, 0.25},
		{0.3, 0.25},
		{0.6, 0.5},
		{0.8, 0.75},
		{1, 0.75},
	}
	for _, tt := range cases {
		if got := fn(tt.in); !approx(got, tt.want, 1e-9) {
			t.Errorf("Steps(4,end)(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	start := Steps(4, true)
	if got := start(0); !approx(got, 0.25, 1e-9) {
		t.Errorf("Steps(4,start)(0) = %v, want 0.25", got)
	}
	if got := start(1); !approx(got, 1, 1e-9) {
		t.Errorf("Steps(4,start)(1) = %v, want 1", got)
	}
}

func TestByName(t *testing.T) {
	fn, ok := ByName("easeInOut")
	if !ok || fn == nil {
		t.Fatal("easeInOut not registered")
	}
	if _, ok := ByName("bounceOut"); !ok {
		t.Error("bounceOut not registered")
	}
	if _, ok := ByName("no-such-easing"); ok {
		t.Error("unknown name reported as registered")
	}
}
