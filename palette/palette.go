package palette

import (
	"fmt"
	"math"

	"github.com/mmuldo/colorbabel/color"
)

// number of bins a palette is resampled to when building a diverging map
const divergingBins = 255

// Center colors for diverging palettes.
var (
	CenterLight = color.New(0.95, 0.95, 0.95)
	CenterDark  = color.New(0.133, 0.133, 0.133)
)

// Palette is a continuous colormap built by piecewise-linear interpolation
// through an ordered list of anchor colors.
type Palette struct {
	anchors []color.Color
}

// Blend creates a palette from one or more anchor colors. A single anchor
// yields a constant map.
func Blend(anchors ...color.Color) (*Palette, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("a palette needs at least one color")
	}

	p := &Palette{anchors: make([]color.Color, len(anchors))}
	copy(p.anchors, anchors)
	return p, nil
}

// Anchors returns a copy of the palette's anchor colors.
func (p *Palette) Anchors() []color.Color {
	out := make([]color.Color, len(p.anchors))
	copy(out, p.anchors)
	return out
}

// At samples the palette at a position in [0, 1]. Positions outside the
// range are clamped.
func (p *Palette) At(frac float64) color.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if len(p.anchors) == 1 {
		return p.anchors[0]
	}

	pos := frac * float64(len(p.anchors)-1)
	i := int(math.Floor(pos))
	if i >= len(p.anchors)-1 {
		return p.anchors[len(p.anchors)-1]
	}
	return p.anchors[i].Lerp(p.anchors[i+1], pos-float64(i))
}

// Sample returns n evenly spaced colors through the palette. Sample(1)
// returns the start of the map.
func (p *Palette) Sample(n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}

	out := make([]color.Color, n)
	if n == 1 {
		out[0] = p.At(0)
		return out, nil
	}
	for i := range out {
		out[i] = p.At(float64(i) / float64(n-1))
	}
	return out, nil
}

// Map indexes arbitrary data into the palette. Every value must already
// be in [0, 1]; use MapScaled for raw data.
func (p *Palette) Map(data []float64) ([]color.Color, error) {
	out := make([]color.Color, len(data))
	for i, v := range data {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("input must be between 0 and 1, you provided %g", v)
		}
		out[i] = p.At(v)
	}
	return out, nil
}

// MapScaled scales data into [0, 1] using vmin and vmax, clipping values
// outside the range, and indexes the result into the palette.
func (p *Palette) MapScaled(data []float64, vmin, vmax float64) ([]color.Color, error) {
	if vmin == vmax {
		return nil, fmt.Errorf("vmin and vmax must differ")
	}

	out := make([]color.Color, len(data))
	for i, v := range data {
		out[i] = p.At((v - vmin) / (vmax - vmin))
	}
	return out, nil
}

// Diverging rebuilds the palette so its middle fades into center. The
// blended middle covers midSpread of the map (0 < midSpread < 1) and the
// original colors drop off logarithmically toward the center; logAmt in
// (0, 1] sets how sharply, with 1 meaning an immediate dropoff.
func (p *Palette) Diverging(center color.Color, midSpread, logAmt float64) (*Palette, error) {
	if len(p.anchors) < 2 {
		return nil, fmt.Errorf("a diverging palette needs at least two anchor colors")
	}
	if midSpread <= 0 || midSpread >= 1 {
		return nil, fmt.Errorf("midSpread must be between 0 and 1, got %g", midSpread)
	}
	if logAmt <= 0 || logAmt > 1 {
		return nil, fmt.Errorf("logAmt must be in (0, 1], got %g", logAmt)
	}

	cols, e := p.Sample(divergingBins)
	if e != nil {
		return nil, e
	}

	ixMid := divergingBins / 2
	nMid := int(divergingBins * midSpread / 2)
	if nMid < 1 {
		nMid = 1
	}

	lo := cols[ixMid-nMid]
	hi := cols[ixMid+nMid]

	out := make([]color.Color, len(cols))
	copy(out, cols)
	for i := 0; i < nMid; i++ {
		t := 0.0
		if nMid > 1 {
			t = float64(i) / float64(nMid-1)
		}

		// low side ramps from the map into the center; the original
		// color's weight decays from 1 to logAmt
		ramp := lo.Lerp(center, t)
		out[ixMid-nMid+i] = weighted(cols[ixMid-nMid+i], ramp, math.Pow(10, math.Log10(logAmt)*t))

		// high side mirrors it
		ramp = center.Lerp(hi, t)
		out[ixMid+i] = weighted(cols[ixMid+i], ramp, math.Pow(10, math.Log10(logAmt)*(1-t)))
	}

	return Blend(out...)
}

// weighted averages old and new with the given weight on old.
func weighted(old, new color.Color, w float64) color.Color {
	return new.Lerp(old, w)
}

// Center resolves a diverging-center argument: "light", "dark", or any
// parseable color string.
func Center(s string) (color.Color, error) {
	switch s {
	case "light":
		return CenterLight, nil
	case "dark":
		return CenterDark, nil
	}
	return color.Parse(s)
}
