package easing

import "github.com/tanema/gween/ease"

// FromTween adapts a gween ease.TweenFunc to a progress-based Function.
// gween easings take (elapsed, begin, change, duration); evaluating over
// a unit tween yields the normalized form.
func FromTween(fn ease.TweenFunc) Function {
	return func(progress float64) float64 {
		return float64(fn(float32(progress), 0, 1, 1))
	}
}

// Power, sine, exponential, bounce and elastic families, backed by gween.
var (
	QuadIn    = FromTween(ease.InQuad)
	QuadOut   = FromTween(ease.OutQuad)
	QuadInOut = FromTween(ease.InOutQuad)

	CubicIn    = FromTween(ease.InCubic)
	CubicOut   = FromTween(ease.OutCubic)
	CubicInOut = FromTween(ease.InOutCubic)

	QuartIn    = FromTween(ease.InQuart)
	QuartOut   = FromTween(ease.OutQuart)
	QuartInOut = FromTween(ease.InOutQuart)

	QuintIn    = FromTween(ease.InQuint)
	QuintOut   = FromTween(ease.OutQuint)
	QuintInOut = FromTween(ease.InOutQuint)

	SineIn    = FromTween(ease.InSine)
	SineOut   = FromTween(ease.OutSine)
	SineInOut = FromTween(ease.InOutSine)

	ExpoIn    = FromTween(ease.InExpo)
	ExpoOut   = FromTween(ease.OutExpo)
	ExpoInOut = FromTween(ease.InOutExpo)

	BounceIn    = FromTween(ease.InBounce)
	BounceOut   = FromTween(ease.OutBounce)
	BounceInOut = FromTween(ease.InOutBounce)

	ElasticIn    = FromTween(ease.InElastic)
	ElasticOut   = FromTween(ease.OutElastic)
	ElasticInOut = FromTween(ease.InOutElastic)
)
