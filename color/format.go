package color

import (
	"fmt"
	"strings"
)

// Kinds lists the output representations understood by Format.
var Kinds = []string{"hex", "hexa", "rgb", "rgba", "hsl", "hsv", "husl", "lab", "xyz", "name"}

// Format renders a color in the named representation.
func Format(c Color, kind string) (string, error) {
	switch strings.ToLower(kind) {
	case "hex":
		return c.Hex(), nil
	case "hexa":
		return c.HexAlpha(), nil
	case "rgb":
		return c.RGBString(), nil
	case "rgba":
		return c.RGBAString(), nil
	case "hsl":
		return c.HSLString(), nil
	case "hsv":
		return c.HSVString(), nil
	case "husl":
		return c.HSLuvString(), nil
	case "lab":
		return c.LabString(), nil
	case "xyz":
		return c.XYZString(), nil
	case "name":
		n, _ := c.Nearest()
		return n, nil
	}
	return "", fmt.Errorf("kind '%s' not supported (must be one of %s)", kind, strings.Join(Kinds, ", "))
}

// FormatAll renders a list of colors in the named representation.
func FormatAll(cs []Color, kind string) ([]string, error) {
	out := make([]string, len(cs))
	for i, c := range cs {
		s, e := Format(c, kind)
		if e != nil {
			return nil, e
		}
		out[i] = s
	}
	return out, nil
}
