package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/colorbabel/color"
)

func TestAverage(t *testing.T) {
	black := color.From255(0, 0, 0)
	white := color.From255(255, 255, 255)

	avg := Average([]color.Color{black, white})
	assert.InDelta(t, math.Sqrt(0.5), avg.R, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), avg.G, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), avg.B, 1e-9)

	assert.Equal(t, color.Color{}, Average(nil))
}

func TestGroup(t *testing.T) {
	red := color.From255(255, 0, 0)
	nearRed := color.From255(250, 5, 5)
	blue := color.From255(0, 0, 255)

	groups := Group([]color.Color{red, nearRed, blue}, DefaultDe)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Equal(t, blue, groups[1][0])
}

func TestDistinct(t *testing.T) {
	red := color.From255(255, 0, 0)
	nearRed := color.From255(250, 5, 5)
	blue := color.From255(0, 0, 255)

	out := Distinct([]color.Color{red, nearRed, blue}, DefaultDe)
	require.Len(t, out, 2)

	// survivors stay far apart
	assert.Greater(t, out[0].Distance(out[1]), float64(DefaultDe))
}

func TestByDeviance(t *testing.T) {
	white := color.From255(255, 255, 255)
	black := color.From255(0, 0, 0)

	// two whites pull the average toward white, so black deviates most
	out := ByDeviance([]color.Color{white, black, white})
	assert.Equal(t, black, out[0])

	// input is left untouched
	in := []color.Color{white, black}
	ByDeviance(in)
	assert.Equal(t, white, in[0])
}
