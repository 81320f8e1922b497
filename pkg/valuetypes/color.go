package valuetypes

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a parsed color. Channels are 0-255 floats so mixing keeps
// sub-byte precision; alpha is 0-1.
type RGBA struct {
	R, G, B float64
	A       float64
}

// Color recognizes hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(),
// hsl()/hsla() and SVG named colors. All forms parse to RGBA.
var Color = ValueType{
	Name: "color",
	Test: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, ok = ParseColor(s)
		return ok
	},
	Parse: func(v any) (any, bool) {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		c, ok := ParseColor(s)
		if !ok {
			return nil, false
		}
		return c, true
	},
	Transform: func(parsed any) string {
		c, _ := parsed.(RGBA)
		return c.String()
	},
}

// ParseColor parses any supported color syntax.
func ParseColor(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	case s == "transparent":
		return RGBA{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA{
			R: float64(c.R),
			G: float64(c.G),
			B: float64(c.B),
			A: float64(c.A) / 255,
		}, true
	}
	return RGBA{}, false
}

// String renders the color as rgba() with rounded channels and the
// alpha trimmed to five decimals.
func (c RGBA) String() string {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(strconv.Itoa(clampChannel(c.R)))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(clampChannel(c.G)))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(clampChannel(c.B)))
	b.WriteString(", ")
	b.WriteString(formatNumber(roundAlpha(c.A)))
	b.WriteString(")")
	return b.String()
}

// MixColor blends two colors: channels interpolate in squared space,
// alpha linearly.
func MixColor(from, to RGBA) func(progress float64) RGBA {
	return func(p float64) RGBA {
		return RGBA{
			R: mixChannel(from.R, to.R, p),
			G: mixChannel(from.G, to.G, p),
			B: mixChannel(from.B, to.B, p),
			A: from.A + (to.A-from.A)*p,
		}
	}
}

func mixChannel(from, to, p float64) float64 {
	fromSq := from * from
	v := fromSq + (to*to-fromSq)*p
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

func clampChannel(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return r
}

func roundAlpha(a float64) float64 {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return math.Round(a*100000) / 100000
}

func parseHex(hex string) (RGBA, bool) {
	var rs, gs, bs, as string
	switch len(hex) {
	case 3:
		rs, gs, bs = dup(hex[0]), dup(hex[1]), dup(hex[2])
		as = "ff"
	case 4:
		rs, gs, bs, as = dup(hex[0]), dup(hex[1]), dup(hex[2]), dup(hex[3])
	case 6:
		rs, gs, bs = hex[0:2], hex[2:4], hex[4:6]
		as = "ff"
	case 8:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return RGBA{}, false
	}
	r, err1 := strconv.ParseUint(rs, 16, 8)
	g, err2 := strconv.ParseUint(gs, 16, 8)
	b, err3 := strconv.ParseUint(bs, 16, 8)
	a, err4 := strconv.ParseUint(as, 16, 8)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return RGBA{}, false
	}
	return RGBA{
		R: float64(r),
		G: float64(g),
		B: float64(b),
		A: float64(a) / 255,
	}, true
}

func dup(c byte) string {
	return string([]byte{c, c})
}

func parseRGBFunc(s string) (RGBA, bool) {
	args, ok := functionArgs(s, "rgb")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return RGBA{}, false
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return RGBA{}, false
		}
		vals[i] = f
	}
	c := RGBA{R: vals[0], G: vals[1], B: vals[2], A: 1}
	if len(vals) == 4 {
		c.A = vals[3]
	}
	return c, true
}

func parseHSLFunc(s string) (RGBA, bool) {
	args, ok := functionArgs(s, "hsl")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return RGBA{}, false
	}
	h, err1 := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	sat, err2 := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	l, err3 := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return RGBA{}, false
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return RGBA{}, false
		}
		alpha = a
	}
	return hslaToRGBA(h, sat, l, alpha), true
}

// functionArgs extracts the arguments of name(...) or namea(...),
// accepting comma, space and slash separators.
func functionArgs(s, name string) ([]string, bool) {
	rest := strings.TrimPrefix(s, name)
	rest = strings.TrimPrefix(rest, "a")
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, false
	}
	inner := rest[1 : len(rest)-1]
	args := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

func hslaToRGBA(h, s, l, a float64) RGBA {
	h /= 360
	s /= 100
	l /= 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		q := l * (1 + s)
		if l >= 0.5 {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3.0)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3.0)
	}
	return RGBA{
		R: math.Round(r * 255),
		G: math.Round(g * 255),
		B: math.Round(b * 255),
		A: a,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
