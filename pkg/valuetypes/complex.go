package valuetypes

import (
	"regexp"
	"strings"

	"github.com/go-drift/motion/pkg/errors"
)

var (
	colorPattern = regexp.MustCompile(
		`(?i)#(?:[0-9a-f]{8}|[0-9a-f]{6}|[0-9a-f]{4}|[0-9a-f]{3})|(?:rgb|hsl)a?\([^)]*\)`)
	numberPattern = regexp.MustCompile(`-?(?:\d+(?:\.\d+)?|\.\d+)`)
)

type tokenKind uint8

const (
	tokenNumber tokenKind = iota
	tokenColor
)

type token struct {
	kind  tokenKind
	num   float64
	color RGBA
}

// parsedComplex is a compound string split into literal segments and
// mixable tokens. segments always has one more entry than tokens; the
// original string is segments[0] + token[0] + segments[1] + ...
type parsedComplex struct {
	segments []string
	tokens   []token
}

// Complex recognizes strings containing at least one number or color
// token, such as "0px 4px 12px rgba(0, 0, 0, 0.4)".
var Complex = ValueType{
	Name: "complex",
	Test: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		return len(parseComplex(s).tokens) > 0
	},
	Parse: func(v any) (any, bool) {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		p := parseComplex(s)
		if len(p.tokens) == 0 {
			return nil, false
		}
		return p, true
	},
	Transform: func(parsed any) string {
		p, _ := parsed.(parsedComplex)
		return p.rebuild()
	},
}

func parseComplex(s string) parsedComplex {
	type span struct {
		start, end int
		tok        token
	}
	var spans []span

	for _, m := range colorPattern.FindAllStringIndex(s, -1) {
		c, ok := ParseColor(s[m[0]:m[1]])
		if !ok {
			continue
		}
		spans = append(spans, span{m[0], m[1], token{kind: tokenColor, color: c}})
	}

	// Numbers are matched only outside color spans so the channels of
	// an rgba() call do not double as standalone tokens.
	for _, m := range numberPattern.FindAllStringIndex(s, -1) {
		insideColor := false
		for _, c := range spans {
			if m[0] >= c.start && m[1] <= c.end {
				insideColor = true
				break
			}
		}
		if insideColor {
			continue
		}
		f, ok := toFloat(s[m[0]:m[1]])
		if !ok {
			continue
		}
		spans = append(spans, span{m[0], m[1], token{kind: tokenNumber, num: f}})
	}

	// Restore document order across the two scans.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].start < spans[j-1].start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}

	p := parsedComplex{}
	pos := 0
	for _, sp := range spans {
		p.segments = append(p.segments, s[pos:sp.start])
		p.tokens = append(p.tokens, sp.tok)
		pos = sp.end
	}
	p.segments = append(p.segments, s[pos:])
	return p
}

func (p parsedComplex) rebuild() string {
	var b strings.Builder
	for i, tok := range p.tokens {
		b.WriteString(p.segments[i])
		switch tok.kind {
		case tokenNumber:
			b.WriteString(formatNumber(tok.num))
		case tokenColor:
			b.WriteString(tok.color.String())
		}
	}
	b.WriteString(p.segments[len(p.segments)-1])
	return b.String()
}

// matches reports whether two parses have pairwise-compatible tokens.
func (p parsedComplex) matches(other parsedComplex) bool {
	if len(p.tokens) != len(other.tokens) {
		return false
	}
	for i := range p.tokens {
		if p.tokens[i].kind != other.tokens[i].kind {
			return false
		}
	}
	return true
}

// MixAny blends two compound strings token-wise: numbers interpolate
// linearly, colors through MixColor, and the literal template comes
// from the target. Structurally incompatible strings warn once and
// switch from origin to target at completion instead.
func MixAny(from, to string) func(progress float64) string {
	origin := parseComplex(from)
	target := parseComplex(to)
	if !origin.matches(target) {
		errors.WarnOnce(from+"|"+to, "valuetypes.MixAny",
			"cannot blend %q with %q, values switch at completion", from, to)
		return mixImmediate(from, to)
	}
	if len(target.tokens) == 0 {
		return mixImmediate(from, to)
	}

	mixed := parsedComplex{
		segments: target.segments,
		tokens:   make([]token, len(target.tokens)),
	}
	colorMixers := make([]func(float64) RGBA, len(target.tokens))
	for i, tk := range target.tokens {
		if tk.kind == tokenColor {
			colorMixers[i] = MixColor(origin.tokens[i].color, tk.color)
		}
	}

	return func(p float64) string {
		for i := range target.tokens {
			o, t := origin.tokens[i], target.tokens[i]
			if t.kind == tokenNumber {
				mixed.tokens[i] = token{kind: tokenNumber, num: o.num + (t.num-o.num)*p}
			} else {
				mixed.tokens[i] = token{kind: tokenColor, color: colorMixers[i](p)}
			}
		}
		return mixed.rebuild()
	}
}

func mixImmediate(from, to string) func(progress float64) string {
	return func(p float64) string {
		if p < 1 {
			return from
		}
		return to
	}
}

// LeadingNumber parses the number a string starts with, ignoring any
// trailing unit or text ("5px" parses as 5). Used for velocity tracking
// of unit-suffixed values.
func LeadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	m := numberPattern.FindStringIndex(s)
	if m == nil || m[0] != 0 {
		return 0, false
	}
	return toFloat(s[:m[1]])
}

// IsAnimatable reports whether a value can be tweened: numbers always,
// strings when they parse to at least one number or color token.
// Strings referencing CSS custom properties or external resources
// (var(), url()) are never animatable.
func IsAnimatable(v any) bool {
	switch s := v.(type) {
	case string:
		trimmed := strings.TrimSpace(s)
		if strings.Contains(trimmed, "var(") || strings.Contains(trimmed, "url(") {
			return false
		}
		if _, ok := toFloat(trimmed); ok {
			return true
		}
		if Color.Test(trimmed) {
			return true
		}
		return len(parseComplex(trimmed).tokens) > 0
	case nil:
		return false
	}
	_, ok := toFloat(v)
	return ok
}
