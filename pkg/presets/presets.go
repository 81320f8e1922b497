// Package presets loads named transition configurations from YAML, so
// motion design lives in data files rather than code. A preset file
// carries a schema version and a map of transitions:
//
//	version: v1
//	transitions:
//	  gentle:
//	    type: spring
//	    bounce: 0.2
//	    visualDuration: 350ms
//	  fade:
//	    duration: 200ms
//	    ease: easeOut
//
// Durations are Go duration strings. Unknown easing names degrade to
// the default with a warning; structural problems (bad durations,
// unknown generator types, a schema newer than this package) fail the
// load.
package presets

import (
	"fmt"
	"os"
	"slices"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
)

// SchemaVersion is the newest preset schema this package reads. Files
// declaring a newer major version are rejected; older or missing
// versions load best-effort.
const SchemaVersion = "v1"

type fileSchema struct {
	Version     string                      `yaml:"version,omitempty"`
	Transitions map[string]transitionSchema `yaml:"transitions"`
}

type transitionSchema struct {
	Type        string    `yaml:"type,omitempty"`
	Duration    string    `yaml:"duration,omitempty"`
	Delay       string    `yaml:"delay,omitempty"`
	Repeat      int       `yaml:"repeat,omitempty"`
	RepeatType  string    `yaml:"repeatType,omitempty"`
	RepeatDelay string    `yaml:"repeatDelay,omitempty"`
	Ease        string    `yaml:"ease,omitempty"`
	Eases       []string  `yaml:"eases,omitempty"`
	Times       []float64 `yaml:"times,omitempty"`

	Stiffness      float64  `yaml:"stiffness,omitempty"`
	Damping        float64  `yaml:"damping,omitempty"`
	Mass           float64  `yaml:"mass,omitempty"`
	Bounce         *float64 `yaml:"bounce,omitempty"`
	VisualDuration string   `yaml:"visualDuration,omitempty"`
	RestSpeed      float64  `yaml:"restSpeed,omitempty"`
	RestDelta      float64  `yaml:"restDelta,omitempty"`

	Power           float64  `yaml:"power,omitempty"`
	TimeConstant    string   `yaml:"timeConstant,omitempty"`
	Min             *float64 `yaml:"min,omitempty"`
	Max             *float64 `yaml:"max,omitempty"`
	BounceStiffness float64  `yaml:"bounceStiffness,omitempty"`
	BounceDamping   float64  `yaml:"bounceDamping,omitempty"`

	Autoplay *bool `yaml:"autoplay,omitempty"`
}

// Library is an immutable set of named transitions parsed from one
// preset file.
type Library struct {
	version     string
	transitions map[string]animation.Transition
}

// Parse reads a preset document from data.
func Parse(data []byte) (*Library, error) {
	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse transition presets: %w", err)
	}

	version, err := validateVersion(file.Version)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		version:     version,
		transitions: make(map[string]animation.Transition, len(file.Transitions)),
	}
	for name, schema := range file.Transitions {
		t, err := schema.build(name)
		if err != nil {
			return nil, fmt.Errorf("transition %q: %w", name, err)
		}
		lib.transitions[name] = t
	}
	return lib, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transition presets: %w", err)
	}
	return Parse(data)
}

// Transition returns the named transition and whether it exists.
func (l *Library) Transition(name string) (animation.Transition, bool) {
	t, ok := l.transitions[name]
	return t, ok
}

// Names returns the sorted transition names.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.transitions))
	for name := range l.transitions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Version returns the schema version the library was declared with.
func (l *Library) Version() string {
	return l.version
}

// validateVersion checks the declared schema version. Missing or
// unparseable versions warn and read as current; a newer major version
// than SchemaVersion is an error.
func validateVersion(version string) (string, error) {
	if version == "" || !semver.IsValid(version) {
		errors.Warnf("presets.Parse",
			"missing or invalid presets version %q, assuming %s", version, SchemaVersion)
		return SchemaVersion, nil
	}
	if semver.Compare(semver.Major(version), SchemaVersion) > 0 {
		return "", fmt.Errorf("presets version %s is newer than supported %s", version, SchemaVersion)
	}
	return version, nil
}

func (s transitionSchema) build(name string) (animation.Transition, error) {
	var t animation.Transition

	switch s.Type {
	case "", "tween":
		t.Type = animation.TypeTween
	case "spring":
		t.Type = animation.TypeSpring
	case "inertia":
		t.Type = animation.TypeInertia
	case "decay":
		t.Type = animation.TypeDecay
	default:
		return t, fmt.Errorf("unknown generator type %q", s.Type)
	}

	switch s.RepeatType {
	case "", "loop":
		t.RepeatType = animation.RepeatLoop
	case "reverse":
		t.RepeatType = animation.RepeatReverse
	case "mirror":
		t.RepeatType = animation.RepeatMirror
	default:
		return t, fmt.Errorf("unknown repeat type %q", s.RepeatType)
	}

	if s.Repeat < 0 {
		return t, fmt.Errorf("repeat must not be negative, got %d", s.Repeat)
	}
	t.Repeat = s.Repeat

	var err error
	if t.Duration, err = parseDuration("duration", s.Duration, false); err != nil {
		return t, err
	}
	// Negative delays start partway through, so they pass validation.
	if t.Delay, err = parseDuration("delay", s.Delay, true); err != nil {
		return t, err
	}
	if t.RepeatDelay, err = parseDuration("repeatDelay", s.RepeatDelay, false); err != nil {
		return t, err
	}
	if t.VisualDuration, err = parseDuration("visualDuration", s.VisualDuration, false); err != nil {
		return t, err
	}
	timeConstant, err := parseDuration("timeConstant", s.TimeConstant, false)
	if err != nil {
		return t, err
	}
	t.TimeConstant = float64(timeConstant) / float64(time.Millisecond)

	if len(s.Eases) > 0 {
		t.Eases = make([]easing.Function, len(s.Eases))
		for i, easeName := range s.Eases {
			t.Eases[i] = lookupEase(easeName, name)
		}
	} else if s.Ease != "" {
		t.Ease = lookupEase(s.Ease, name)
	}
	t.Times = s.Times

	t.Stiffness = s.Stiffness
	t.Damping = s.Damping
	t.Mass = s.Mass
	t.Bounce = s.Bounce
	t.RestSpeed = s.RestSpeed
	t.RestDelta = s.RestDelta

	t.Power = s.Power
	t.Min = s.Min
	t.Max = s.Max
	t.BounceStiffness = s.BounceStiffness
	t.BounceDamping = s.BounceDamping

	t.Autoplay = s.Autoplay
	return t, nil
}

// lookupEase resolves an easing name, degrading to the generator
// default on unknown names so a typo never breaks playback.
func lookupEase(easeName, transition string) easing.Function {
	fn, ok := easing.ByName(easeName)
	if !ok {
		errors.Warnf("presets.Parse",
			"unknown easing %q in transition %q, using the default", easeName, transition)
		return easing.EaseInOut
	}
	return fn
}

func parseDuration(field, raw string, allowNegative bool) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	if d < 0 && !allowNegative {
		return 0, fmt.Errorf("%s must not be negative, got %s", field, raw)
	}
	return d, nil
}
