// Package easing provides easing functions that transform linear
// animation progress into natural-feeling motion.
//
// Each easing is a [Function] mapping progress in [0, 1] to eased
// progress. Values outside [0, 1] may be returned by overshooting
// easings such as [BackOut] and the elastic family.
//
// Standard curves: [Linear], [EaseIn], [EaseOut], [EaseInOut]. Use
// [CubicBezier] to create custom curves matching CSS cubic-bezier(), or
// [ByName] to look easings up from configuration.
package easing

import "math"

// Function maps animation progress in [0, 1] to eased progress.
type Function func(progress float64) float64

// Linear returns progress unchanged (no easing).
func Linear(progress float64) float64 {
	return progress
}

// Ease is a general-purpose curve equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates.
var EaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// This is the default easing for keyframe animations.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CircIn eases along a quarter circle, accelerating sharply at the end.
func CircIn(progress float64) float64 {
	return 1 - math.Sin(math.Acos(progress))
}

// CircOut is the reverse of CircIn.
var CircOut = Reverse(CircIn)

// CircInOut mirrors CircIn around the midpoint.
var CircInOut = Mirror(CircIn)

// BackOut overshoots the target slightly before settling.
var BackOut = CubicBezier(0.33, 1.53, 0.69, 0.99)

// BackIn pulls back slightly before accelerating.
var BackIn = Reverse(BackOut)

// BackInOut mirrors BackIn around the midpoint.
var BackInOut = Mirror(BackIn)

// Anticipate pulls back before accelerating through the target.
func Anticipate(progress float64) float64 {
	p := progress * 2
	if p < 1 {
		return 0.5 * BackIn(p)
	}
	return 0.5 * (2 - math.Pow(2, -10*(p-1)))
}

// Reverse plays an easing backwards: the output easing accelerates where
// fn decelerates.
func Reverse(fn Function) Function {
	return func(progress float64) float64 {
		return 1 - fn(1-progress)
	}
}

// Mirror reflects an easing around the midpoint, turning an ease-in into
// an ease-in-out.
func Mirror(fn Function) Function {
	return func(progress float64) float64 {
		if progress <= 0.5 {
			return fn(2*progress) / 2
		}
		return (2 - fn(2*(1-progress))) / 2
	}
}

// Steps quantizes progress into count equal treads, matching CSS
// steps(). With jumpStart the value changes at the start of each step
// rather than the end.
func Steps(count int, jumpStart bool) Function {
	if count < 1 {
		count = 1
	}
	n := float64(count)
	return func(progress float64) float64 {
		var rounded float64
		if jumpStart {
			rounded = math.Ceil(math.Max(progress, 0.001) * n)
		} else {
			rounded = math.Floor(math.Min(progress, 0.999) * n)
		}
		return clampUnit(rounded / n)
	}
}
