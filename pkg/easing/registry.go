package easing

// byName maps configuration names to easing functions.
var byName = map[string]Function{
	"linear":       Linear,
	"ease":         Ease,
	"easeIn":       EaseIn,
	"easeOut":      EaseOut,
	"easeInOut":    EaseInOut,
	"circIn":       CircIn,
	"circOut":      CircOut,
	"circInOut":    CircInOut,
	"backIn":       BackIn,
	"backOut":      BackOut,
	"backInOut":    BackInOut,
	"anticipate":   Anticipate,
	"quadIn":       QuadIn,
	"quadOut":      QuadOut,
	"quadInOut":    QuadInOut,
	"cubicIn":      CubicIn,
	"cubicOut":     CubicOut,
	"cubicInOut":   CubicInOut,
	"quartIn":      QuartIn,
	"quartOut":     QuartOut,
	"quartInOut":   QuartInOut,
	"quintIn":      QuintIn,
	"quintOut":     QuintOut,
	"quintInOut":   QuintInOut,
	"sineIn":       SineIn,
	"sineOut":      SineOut,
	"sineInOut":    SineInOut,
	"expoIn":       ExpoIn,
	"expoOut":      ExpoOut,
	"expoInOut":    ExpoInOut,
	"bounceIn":     BounceIn,
	"bounceOut":    BounceOut,
	"bounceInOut":  BounceInOut,
	"elasticIn":    ElasticIn,
	"elasticOut":   ElasticOut,
	"elasticInOut": ElasticInOut,
}

// ByName looks up an easing function by its configuration name, for
// example "easeInOut" or "bounceOut". The second return reports whether
// the name is known.
func ByName(name string) (Function, bool) {
	fn, ok := byName[name]
	return fn, ok
}

// Names returns the set of registered easing names. Intended for
// diagnostics and configuration validation messages.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
