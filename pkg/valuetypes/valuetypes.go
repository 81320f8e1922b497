// Package valuetypes provides the default value-type registry used to
// decide whether values can be animated and to blend non-numeric values
// such as colors and compound strings.
//
// A ValueType bundles three capabilities over loosely typed values:
//
//   - Test reports whether a raw value belongs to the type.
//   - Parse decomposes the value into a typed payload for mixing.
//   - Transform rebuilds the serialized form from a payload.
//
// The registry is a default implementation: the animation controller
// accepts any compatible mixer, so embedders with their own property
// model can bypass this package entirely.
package valuetypes

import (
	"strconv"
	"strings"
)

// ValueType describes one family of animatable values.
type ValueType struct {
	Name      string
	Test      func(v any) bool
	Parse     func(v any) (any, bool)
	Transform func(parsed any) string
}

// Number handles bare numeric values, including numeric strings.
var Number = ValueType{
	Name: "number",
	Test: func(v any) bool {
		_, ok := toFloat(v)
		return ok
	},
	Parse: func(v any) (any, bool) {
		f, ok := toFloat(v)
		return f, ok
	},
	Transform: func(parsed any) string {
		f, _ := parsed.(float64)
		return formatNumber(f)
	},
}

// Suffixed builds a ValueType for numbers carrying a fixed unit suffix.
func Suffixed(name, unit string) ValueType {
	return ValueType{
		Name: name,
		Test: func(v any) bool {
			s, ok := v.(string)
			if !ok || !strings.HasSuffix(s, unit) {
				return false
			}
			_, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
			return err == nil
		},
		Parse: func(v any) (any, bool) {
			s, ok := v.(string)
			if !ok || !strings.HasSuffix(s, unit) {
				return nil, false
			}
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
			if err != nil {
				return nil, false
			}
			return f, true
		},
		Transform: func(parsed any) string {
			f, _ := parsed.(float64)
			return formatNumber(f) + unit
		},
	}
}

// Dimension value types.
var (
	Px      = Suffixed("px", "px")
	Percent = Suffixed("percent", "%")
	Degrees = Suffixed("degrees", "deg")
	Vw      = Suffixed("vw", "vw")
	Vh      = Suffixed("vh", "vh")
)

// dimensions in test order, most common first.
var dimensions = []ValueType{Px, Percent, Degrees, Vw, Vh}

// For returns the first registered value type matching v, most specific
// first: numbers, unit dimensions, colors, then compound strings.
func For(v any) (ValueType, bool) {
	if Number.Test(v) {
		return Number, true
	}
	for _, d := range dimensions {
		if d.Test(v) {
			return d, true
		}
	}
	if Color.Test(v) {
		return Color, true
	}
	if Complex.Test(v) {
		return Complex, true
	}
	return ValueType{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// formatNumber renders floats the shortest way that round-trips.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
