package color

import (
	"fmt"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// Color represents an sRGB color with an alpha channel. All channels are
// float64 in [0, 1]; every output representation is derived from them.
type Color struct {
	R, G, B, A float64
}

// New returns an opaque color from channels in [0, 1].
func New(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// NewAlpha returns a color from channels in [0, 1], including alpha.
func NewAlpha(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// From255 returns an opaque color from 8-bit channels.
func From255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// FromColor converts any image/color.Color, un-premultiplying alpha.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{0, 0, 0, 0}
	}
	return Color{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		float64(a) / 0xffff,
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(clamp01(c.A) * 0xffff))
	r = uint32(math.Round(clamp01(c.R) * clamp01(c.A) * 0xffff))
	g = uint32(math.Round(clamp01(c.G) * clamp01(c.A) * 0xffff))
	b = uint32(math.Round(clamp01(c.B) * clamp01(c.A) * 0xffff))
	return
}

// RGB255 returns the 8-bit channels, rounded to nearest.
func (c Color) RGB255() (r, g, b uint8) {
	r = uint8(math.Round(clamp01(c.R) * 255))
	g = uint8(math.Round(clamp01(c.G) * 255))
	b = uint8(math.Round(clamp01(c.B) * 255))
	return
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexAlpha returns the color as "#rrggbbaa".
func (c Color) HexAlpha() string {
	a := uint8(math.Round(clamp01(c.A) * 255))
	return fmt.Sprintf("%s%02x", c.Hex(), a)
}

// RGBString returns the color as a plotly-style "rgb(r, g, b)" string.
func (c Color) RGBString() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// RGBAString returns the color as an "rgba(r, g, b, a)" string.
func (c Color) RGBAString() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(clamp01(c.A)))
}

// HSL returns hue in [0, 360) and saturation/lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	r, g, b := c.RGB255()
	return colorconv.RGBToHSL(r, g, b)
}

// HSLString returns the color as an "hsl(h, s%, l%)" string.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
}

// HSV returns hue in [0, 360) and saturation/value in [0, 1].
func (c Color) HSV() (h, s, v float64) {
	r, g, b := c.RGB255()
	return colorconv.RGBToHSV(r, g, b)
}

// HSVString returns the color as an "hsv(h, s%, v%)" string.
func (c Color) HSVString() string {
	h, s, v := c.HSV()
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)",
		int(math.Round(h)), int(math.Round(s*100)), int(math.Round(v*100)))
}

// HSLuv returns the color in the HSLuv space: hue in [0, 360),
// saturation and lightness in [0, 100].
func (c Color) HSLuv() (h, s, l float64) {
	h, s, l = colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.HSLuv()
	return h, s * 100, l * 100
}

// HSLuvString returns the color as a "husl(h, s%, l%)" string.
func (c Color) HSLuvString() string {
	h, s, l := c.HSLuv()
	return fmt.Sprintf("husl(%d, %d%%, %d%%)",
		int(math.Round(h)), int(math.Round(s)), int(math.Round(l)))
}

// XYZ returns the color in CIE XYZ under the D50 illuminant.
func (c Color) XYZ() chromath.XYZ {
	r, g, b := c.RGB255()
	return rgb2Xyz.Convert(chromath.RGB{float64(r), float64(g), float64(b)})
}

// XYZString returns the color as an "xyz(x, y, z)" string.
func (c Color) XYZString() string {
	xyz := c.XYZ()
	return fmt.Sprintf("xyz(%.4f, %.4f, %.4f)", xyz.X(), xyz.Y(), xyz.Z())
}

// Lab returns the color in CIE Lab under the D50 illuminant.
func (c Color) Lab() chromath.Lab {
	return lab2Xyz.Invert(c.XYZ())
}

// LabString returns the color as a "lab(l, a, b)" string.
func (c Color) LabString() string {
	lab := c.Lab()
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", lab.L(), lab.A(), lab.B())
}

// Distance returns the CIEDE2000 difference between two colors.
func (c Color) Distance(o Color) float64 {
	return ciede2000(c.Lab(), o.Lab())
}

func ciede2000(a, b chromath.Lab) float64 {
	return deltae.CIE2000(a, b, klch)
}

// Lerp linearly interpolates between c and o. t is clamped to [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp01(t)
	return Color{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
		c.A + (o.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// trims trailing zeros off an alpha value, e.g. "0.5" instead of "0.50"
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
