package presets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
)

const sampleDoc = `
version: v1
transitions:
  fade:
    duration: 200ms
    ease: linear
    repeat: 1
    repeatType: reverse
    repeatDelay: 50ms
  gentle:
    type: spring
    bounce: 0.2
    visualDuration: 350ms
  fling:
    type: inertia
    power: 0.9
    timeConstant: 325ms
    min: 0
    max: 480
`

type warningCounter struct {
	warnings []*errors.Warning
}

func (h *warningCounter) HandleError(err *errors.Error)    {}
func (h *warningCounter) HandleWarning(w *errors.Warning)  { h.warnings = append(h.warnings, w) }
func (h *warningCounter) HandlePanic(p *errors.PanicError) {}

func captureWarnings(t *testing.T) *warningCounter {
	t.Helper()
	h := &warningCounter{}
	old := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func TestParseBuildsTransitions(t *testing.T) {
	lib, err := Parse([]byte(sampleDoc))
	assert.NoError(t, err)
	assert.Equal(t, "v1", lib.Version())
	assert.Equal(t, []string{"fade", "fling", "gentle"}, lib.Names())

	t.Run("tween", func(t *testing.T) {
		fade, ok := lib.Transition("fade")
		assert.True(t, ok)
		assert.Equal(t, animation.TypeTween, fade.Type)
		assert.Equal(t, 200*time.Millisecond, fade.Duration)
		assert.Equal(t, 1, fade.Repeat)
		assert.Equal(t, animation.RepeatReverse, fade.RepeatType)
		assert.Equal(t, 50*time.Millisecond, fade.RepeatDelay)
		if assert.NotNil(t, fade.Ease) {
			assert.Equal(t, 0.25, fade.Ease(0.25))
		}
	})

	t.Run("spring", func(t *testing.T) {
		gentle, ok := lib.Transition("gentle")
		assert.True(t, ok)
		assert.Equal(t, animation.TypeSpring, gentle.Type)
		if assert.NotNil(t, gentle.Bounce) {
			assert.Equal(t, 0.2, *gentle.Bounce)
		}
		assert.Equal(t, 350*time.Millisecond, gentle.VisualDuration)
	})

	t.Run("inertia", func(t *testing.T) {
		fling, ok := lib.Transition("fling")
		assert.True(t, ok)
		assert.Equal(t, animation.TypeInertia, fling.Type)
		assert.Equal(t, 0.9, fling.Power)
		assert.Equal(t, 325.0, fling.TimeConstant)
		if assert.NotNil(t, fling.Min) {
			assert.Equal(t, 0.0, *fling.Min)
		}
		if assert.NotNil(t, fling.Max) {
			assert.Equal(t, 480.0, *fling.Max)
		}
	})

	_, ok := lib.Transition("missing")
	assert.False(t, ok)
}

func TestParseRejectsStructuralProblems(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad duration", "transitions:\n  t:\n    duration: fast\n"},
		{"negative duration", "transitions:\n  t:\n    duration: -5ms\n"},
		{"unknown type", "transitions:\n  t:\n    type: zoom\n"},
		{"unknown repeat type", "transitions:\n  t:\n    repeatType: bounce\n"},
		{"negative repeat", "transitions:\n  t:\n    repeat: -1\n"},
		{"newer schema", "version: v2\ntransitions: {}\n"},
		{"not yaml", "transitions: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			captureWarnings(t)
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseAllowsNegativeDelay(t *testing.T) {
	lib, err := Parse([]byte("version: v1\ntransitions:\n  t:\n    delay: -50ms\n"))
	assert.NoError(t, err)
	tr, ok := lib.Transition("t")
	assert.True(t, ok)
	assert.Equal(t, -50*time.Millisecond, tr.Delay)
}

func TestParseVersionHandling(t *testing.T) {
	t.Run("missing version warns and assumes current", func(t *testing.T) {
		h := captureWarnings(t)
		lib, err := Parse([]byte("transitions: {}\n"))
		assert.NoError(t, err)
		assert.Equal(t, SchemaVersion, lib.Version())
		assert.Len(t, h.warnings, 1)
	})

	t.Run("invalid version warns and assumes current", func(t *testing.T) {
		h := captureWarnings(t)
		lib, err := Parse([]byte("version: banana\ntransitions: {}\n"))
		assert.NoError(t, err)
		assert.Equal(t, SchemaVersion, lib.Version())
		assert.Len(t, h.warnings, 1)
	})

	t.Run("older version loads silently", func(t *testing.T) {
		h := captureWarnings(t)
		lib, err := Parse([]byte("version: v0.9\ntransitions: {}\n"))
		assert.NoError(t, err)
		assert.Equal(t, "v0.9", lib.Version())
		assert.Empty(t, h.warnings)
	})
}

func TestParseUnknownEaseWarnsAndDefaults(t *testing.T) {
	h := captureWarnings(t)
	lib, err := Parse([]byte("version: v1\ntransitions:\n  t:\n    ease: wobble\n"))
	assert.NoError(t, err)
	assert.Len(t, h.warnings, 1)

	tr, ok := lib.Transition("t")
	assert.True(t, ok)
	if assert.NotNil(t, tr.Ease) {
		assert.InDelta(t, easing.EaseInOut(0.3), tr.Ease(0.3), 1e-12)
	}
}

func TestParsePerSegmentEases(t *testing.T) {
	lib, err := Parse([]byte("version: v1\ntransitions:\n  t:\n    eases: [linear, easeOut]\n"))
	assert.NoError(t, err)

	tr, ok := lib.Transition("t")
	assert.True(t, ok)
	if assert.Len(t, tr.Eases, 2) {
		assert.Equal(t, 0.5, tr.Eases[0](0.5))
	}
	assert.Nil(t, tr.Ease)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transitions.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	lib, err := Load(path)
	assert.NoError(t, err)
	_, ok := lib.Transition("fade")
	assert.True(t, ok)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
