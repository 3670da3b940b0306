package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/colorbabel/color"
)

func TestBlendNeedsColors(t *testing.T) {
	_, e := Blend()
	assert.Error(t, e)
}

func TestSingleAnchorIsConstant(t *testing.T) {
	c := color.From255(30, 144, 255)
	p, e := Blend(c)
	require.NoError(t, e)

	for _, frac := range []float64{0, 0.3, 0.7, 1} {
		assert.Equal(t, c, p.At(frac))
	}

	cs, e := p.Sample(5)
	require.NoError(t, e)
	for _, got := range cs {
		assert.Equal(t, c, got)
	}
}

func TestAt(t *testing.T) {
	black := color.From255(0, 0, 0)
	white := color.From255(255, 255, 255)
	p, e := Blend(black, white)
	require.NoError(t, e)

	mid := p.At(0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.G, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)

	// positions outside [0, 1] clamp
	assert.Equal(t, black, p.At(-3))
	assert.Equal(t, white, p.At(7))
}

func TestAtHitsMiddleAnchor(t *testing.T) {
	r := color.From255(255, 0, 0)
	g := color.From255(0, 255, 0)
	b := color.From255(0, 0, 255)
	p, e := Blend(r, g, b)
	require.NoError(t, e)

	assert.Equal(t, r, p.At(0))
	assert.Equal(t, g, p.At(0.5))
	assert.Equal(t, b, p.At(1))
}

func TestSample(t *testing.T) {
	p, e := Blend(color.From255(0, 0, 0), color.From255(255, 255, 255))
	require.NoError(t, e)

	cs, e := p.Sample(3)
	require.NoError(t, e)
	require.Len(t, cs, 3)
	assert.Equal(t, p.At(0), cs[0])
	assert.Equal(t, p.At(0.5), cs[1])
	assert.Equal(t, p.At(1), cs[2])

	// Sample(1) returns the start of the map
	cs, e = p.Sample(1)
	require.NoError(t, e)
	assert.Equal(t, p.At(0), cs[0])

	_, e = p.Sample(0)
	assert.Error(t, e)
}

func TestMap(t *testing.T) {
	p, e := Blend(color.From255(0, 0, 0), color.From255(255, 255, 255))
	require.NoError(t, e)

	cs, e := p.Map([]float64{0, 0.5, 1})
	require.NoError(t, e)
	assert.InDelta(t, 0.5, cs[1].R, 1e-9)

	_, e = p.Map([]float64{0, 1.5})
	assert.Error(t, e)
	_, e = p.Map([]float64{-0.1})
	assert.Error(t, e)
}

func TestMapScaled(t *testing.T) {
	black := color.From255(0, 0, 0)
	white := color.From255(255, 255, 255)
	p, e := Blend(black, white)
	require.NoError(t, e)

	cs, e := p.MapScaled([]float64{0, 5, 10}, 0, 10)
	require.NoError(t, e)
	assert.Equal(t, black, cs[0])
	assert.InDelta(t, 0.5, cs[1].R, 1e-9)
	assert.Equal(t, white, cs[2])

	// out-of-range data clips instead of erroring
	cs, e = p.MapScaled([]float64{-100, 100}, 0, 10)
	require.NoError(t, e)
	assert.Equal(t, black, cs[0])
	assert.Equal(t, white, cs[1])

	_, e = p.MapScaled([]float64{1}, 5, 5)
	assert.Error(t, e)
}

func TestDiverging(t *testing.T) {
	navy := color.From255(0, 0, 128)
	brick := color.From255(178, 34, 34)
	p, e := Blend(navy, brick)
	require.NoError(t, e)

	d, e := p.Diverging(CenterLight, 0.4, 1e-3)
	require.NoError(t, e)

	// ends keep the original colors
	assert.InDelta(t, navy.B, d.At(0).B, 0.01)
	assert.InDelta(t, brick.R, d.At(1).R, 0.01)

	// the middle sits at the center color
	mid := d.At(0.5)
	assert.InDelta(t, CenterLight.R, mid.R, 0.02)
	assert.InDelta(t, CenterLight.G, mid.G, 0.02)
	assert.InDelta(t, CenterLight.B, mid.B, 0.02)
}

func TestDivergingErrors(t *testing.T) {
	p, e := Blend(color.From255(0, 0, 128), color.From255(178, 34, 34))
	require.NoError(t, e)

	_, e = p.Diverging(CenterLight, 0, 1e-3)
	assert.Error(t, e)
	_, e = p.Diverging(CenterLight, 1, 1e-3)
	assert.Error(t, e)
	_, e = p.Diverging(CenterLight, 0.4, 0)
	assert.Error(t, e)
	_, e = p.Diverging(CenterLight, 0.4, 1.5)
	assert.Error(t, e)

	single, e := Blend(color.From255(0, 0, 128))
	require.NoError(t, e)
	_, e = single.Diverging(CenterDark, 0.4, 1e-3)
	assert.Error(t, e)
}

func TestCenter(t *testing.T) {
	c, e := Center("light")
	require.NoError(t, e)
	assert.Equal(t, CenterLight, c)

	c, e = Center("dark")
	require.NoError(t, e)
	assert.Equal(t, CenterDark, c)

	c, e = Center("#ff0000")
	require.NoError(t, e)
	assert.Equal(t, "#ff0000", c.Hex())

	_, e = Center("nope")
	assert.Error(t, e)
}

func TestAnchorsCopies(t *testing.T) {
	p, e := Blend(color.From255(1, 2, 3))
	require.NoError(t, e)

	a := p.Anchors()
	a[0] = color.From255(9, 9, 9)
	assert.Equal(t, color.From255(1, 2, 3), p.Anchors()[0])
}
