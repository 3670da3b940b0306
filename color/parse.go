package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crazy3lf/colorconv"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Parse translates a color string in any supported representation into a
// Color. Supported forms are hex ("#f80", "#ff8800", "#ff8800cc", leading
// '#' optional), functional strings ("rgb(255, 136, 0)", "rgba(...)",
// "hsl(30, 100%, 50%)", "husl(...)"), and CSS3 color names.
func Parse(s string) (Color, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return Color{}, fmt.Errorf("cannot parse empty color string")
	}

	switch {
	case strings.HasPrefix(t, "#"):
		return ParseHex(t)
	case strings.HasPrefix(t, "rgba("):
		return parseFunc(t, "rgba")
	case strings.HasPrefix(t, "rgb("):
		return parseFunc(t, "rgb")
	case strings.HasPrefix(t, "hsl("):
		return parseFunc(t, "hsl")
	case strings.HasPrefix(t, "husl("):
		return parseFunc(t, "husl")
	}

	if c, ok := ByName(t); ok {
		return c, nil
	}

	// bare hex, e.g. "ff8800"
	if isHex(t) {
		return ParseHex(t)
	}

	return Color{}, fmt.Errorf("'%s' is not a recognized color", s)
}

// ParseAll translates a list of color strings.
func ParseAll(ss []string) ([]Color, error) {
	cs := make([]Color, len(ss))
	for i, s := range ss {
		c, e := Parse(s)
		if e != nil {
			return nil, e
		}
		cs[i] = c
	}
	return cs, nil
}

// ParseHex translates a hex color string. The leading '#' is optional and
// 3, 6 and 8 digit forms are accepted.
func ParseHex(s string) (Color, error) {
	t := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
	if !isHex(t) {
		return Color{}, fmt.Errorf("'%s' is not a valid hex color", s)
	}

	switch len(t) {
	case 3:
		// #abc expands to #aabbcc
		t = string([]byte{t[0], t[0], t[1], t[1], t[2], t[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("'%s' is not a valid hex color: must be 3, 6 or 8 digits", s)
	}

	v, e := strconv.ParseUint(t, 16, 64)
	if e != nil {
		return Color{}, fmt.Errorf("'%s' is not a valid hex color: %v", s, e)
	}

	if len(t) == 8 {
		c := From255(uint8(v>>24), uint8(v>>16), uint8(v>>8))
		c.A = float64(uint8(v)) / 255
		return c, nil
	}
	return From255(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FromFloats translates numeric triples or quads into colors. Components
// may be either floats in [0, 1] or values in [0, 255]; if any component
// exceeds 1, the whole set is interpreted as 0-255 and scaled down.
func FromFloats(vals [][]float64) ([]Color, error) {
	scale := 1.0
	for _, v := range vals {
		if len(v) != 3 && len(v) != 4 {
			return nil, fmt.Errorf("numeric colors must have 3 or 4 components, got %d", len(v))
		}
		for _, x := range v {
			if x < 0 {
				return nil, fmt.Errorf("color component %g is negative", x)
			}
			if x > 1 {
				scale = 255.0
			}
		}
	}

	cs := make([]Color, len(vals))
	for i, v := range vals {
		c := Color{v[0] / scale, v[1] / scale, v[2] / scale, 1}
		if len(v) == 4 {
			// alpha stays fractional even in 0-255 form
			a := v[3]
			if scale != 1 && a > 1 {
				a /= scale
			}
			c.A = a
		}
		if c.R > 1 || c.G > 1 || c.B > 1 || c.A > 1 {
			return nil, fmt.Errorf("color component out of range in %v", v)
		}
		cs[i] = c
	}
	return cs, nil
}

// parses functional color strings: rgb(), rgba(), hsl(), husl()
func parseFunc(s string, kind string) (Color, error) {
	open := strings.Index(s, "(")
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("'%s' is not a valid %s() color", s, kind)
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	want := 3
	if kind == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("'%s' must have %d components", s, want)
	}

	n := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), "%"))
		v, e := strconv.ParseFloat(p, 64)
		if e != nil {
			return Color{}, fmt.Errorf("'%s' has a bad component '%s': %v", s, parts[i], e)
		}
		n[i] = v
	}

	switch kind {
	case "rgb", "rgba":
		for _, v := range n[:3] {
			if v < 0 || v > 255 {
				return Color{}, fmt.Errorf("'%s' has a component outside 0-255", s)
			}
		}
		c := New(n[0]/255, n[1]/255, n[2]/255)
		if kind == "rgba" {
			if n[3] < 0 || n[3] > 1 {
				return Color{}, fmt.Errorf("'%s' alpha must be between 0 and 1", s)
			}
			c.A = n[3]
		}
		return c, nil
	case "hsl":
		h, sat, l := n[0], pct(parts[1], n[1]), pct(parts[2], n[2])
		r, g, b, e := colorconv.HSLToRGB(h, sat, l)
		if e != nil {
			return Color{}, fmt.Errorf("'%s' is not a valid hsl() color: %v", s, e)
		}
		return From255(r, g, b), nil
	case "husl":
		if n[0] < 0 || n[0] > 360 || n[1] < 0 || n[1] > 100 || n[2] < 0 || n[2] > 100 {
			return Color{}, fmt.Errorf("'%s' is not a valid husl() color", s)
		}
		c := colorful.HSLuv(n[0], n[1]/100, n[2]/100).Clamped()
		return New(c.R, c.G, c.B), nil
	}
	return Color{}, fmt.Errorf("'%s' color strings are not supported", kind)
}

// saturation/lightness components accept both "50%" and "0.5"
func pct(raw string, v float64) float64 {
	if strings.HasSuffix(strings.TrimSpace(raw), "%") {
		return v / 100
	}
	if v > 1 {
		return v / 100
	}
	return v
}

func isHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
