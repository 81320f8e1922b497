package generators

import (
	"math"
	"testing"

	"github.com/go-drift/motion/pkg/errors"
)

// captureHandler records reports so tests can assert on warnings and
// errors without writing to stderr.
type captureHandler struct {
	errs     []*errors.Error
	warnings []*errors.Warning
	panics   []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.Error)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandleWarning(w *errors.Warning)  { h.warnings = append(h.warnings, w) }
func (h *captureHandler) HandlePanic(p *errors.PanicError) { h.panics = append(h.panics, p) }

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// neverSettles is a generator whose done flag never flips.
type neverSettles struct {
	state Result[float64]
}

func (g *neverSettles) Next(elapsed float64) *Result[float64] {
	g.state.Value = elapsed
	return &g.state
}

func (g *neverSettles) CalculatedDuration() (float64, bool) { return 0, false }

func TestVelocityPerSecond(t *testing.T) {
	tests := []struct {
		delta      float64
		frameDelta float64
		want       float64
	}{
		{10, 5, 2000},
		{-4, 16, -250},
		{0, 10, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := VelocityPerSecond(tt.delta, tt.frameDelta); got != tt.want {
			t.Errorf("VelocityPerSecond(%v, %v) = %v, want %v", tt.delta, tt.frameDelta, got, tt.want)
		}
	}
}

func TestEstimateVelocity(t *testing.T) {
	// 3 units per millisecond is 3000 units per second.
	linear := func(ts float64) float64 { return 3 * ts }

	if got := EstimateVelocity(linear, 10, linear(10)); !approxEqual(got, 3000, 1e-9) {
		t.Errorf("EstimateVelocity at t=10 = %v, want 3000", got)
	}
	// Lookback is truncated at t=0 for early samples.
	if got := EstimateVelocity(linear, 2, linear(2)); !approxEqual(got, 3000, 1e-9) {
		t.Errorf("EstimateVelocity at t=2 = %v, want 3000", got)
	}
	if got := EstimateVelocity(linear, 0, linear(0)); got != 0 {
		t.Errorf("EstimateVelocity at t=0 = %v, want 0", got)
	}
}

func TestCalcDurationSamplesUntilDone(t *testing.T) {
	g := NewKeyframes(KeyframesOptions[float64]{
		Keyframes: []float64{0, 100},
		Duration:  200,
	})
	if got := CalcDuration[float64](g); got != 200 {
		t.Errorf("CalcDuration = %v, want 200", got)
	}
}

func TestCalcDurationUnsettledIsInfinite(t *testing.T) {
	if got := CalcDuration[float64](&neverSettles{}); !math.IsInf(got, 1) {
		t.Errorf("CalcDuration = %v, want +Inf", got)
	}
}

func TestFloat(t *testing.T) {
	p := Float(3.5)
	if p == nil || *p != 3.5 {
		t.Errorf("Float(3.5) = %v, want pointer to 3.5", p)
	}
}
