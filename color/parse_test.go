package color

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		hex  string
	}{
		{"long_form", "#ff8800", "#ff8800"},
		{"short_form", "#f80", "#ff8800"},
		{"no_hash", "ff8800", "#ff8800"},
		{"uppercase", "#FF8800", "#ff8800"},
		{"whitespace", "  #ff8800  ", "#ff8800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, e := Parse(tt.in)
			require.NoError(t, e)
			assert.Equal(t, tt.hex, c.Hex())
		})
	}
}

func TestParseHexAlpha(t *testing.T) {
	c, e := Parse("#ff880080")
	require.NoError(t, e)
	assert.Equal(t, "#ff8800", c.Hex())
	assert.InDelta(t, 128.0/255, c.A, 1e-9)
}

func TestParseFunctional(t *testing.T) {
	tests := []struct {
		name string
		in   string
		hex  string
	}{
		{"rgb", "rgb(255, 136, 0)", "#ff8800"},
		{"rgb_no_spaces", "rgb(255,136,0)", "#ff8800"},
		{"rgba", "rgba(255, 136, 0, 0.5)", "#ff8800"},
		{"hsl_red", "hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl_fractional", "hsl(0, 1, 0.5)", "#ff0000"},
		{"hsl_gray", "hsl(0, 0%, 50%)", "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, e := Parse(tt.in)
			require.NoError(t, e)
			assert.Equal(t, tt.hex, c.Hex())
		})
	}
}

func TestParseRGBAAlpha(t *testing.T) {
	c, e := Parse("rgba(10, 20, 30, 0.25)")
	require.NoError(t, e)
	assert.InDelta(t, 0.25, c.A, 1e-9)
}

func TestParseName(t *testing.T) {
	c, e := Parse("dodgerblue")
	require.NoError(t, e)
	assert.Equal(t, "#1e90ff", c.Hex())

	c, e = Parse("DodgerBlue")
	require.NoError(t, e)
	assert.Equal(t, "#1e90ff", c.Hex())
}

func TestParseHusl(t *testing.T) {
	// HSLuv round trip through the functional string form
	orig := New(0.2, 0.4, 0.6)
	h, s, l := orig.HSLuv()

	c, e := Parse(fmt.Sprintf("husl(%.3f, %.3f, %.3f)", h, s, l))
	require.NoError(t, e)
	assert.InDelta(t, orig.R, c.R, 0.01)
	assert.InDelta(t, orig.G, c.G, 0.01)
	assert.InDelta(t, orig.B, c.B, 0.01)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"notacolor",
		"#ff88",
		"#gghhii",
		"rgb(256, 0, 0)",
		"rgb(10, 20)",
		"rgba(10, 20, 30, 2)",
		"hsl(0, 200%, 50%)",
		"husl(400, 50, 50)",
	}

	for _, in := range bad {
		_, e := Parse(in)
		assert.Error(t, e, "expected %q to fail", in)
	}
}

func TestFromFloats(t *testing.T) {
	t.Run("fractional", func(t *testing.T) {
		cs, e := FromFloats([][]float64{{0.5, 0.25, 1}})
		require.NoError(t, e)
		assert.InDelta(t, 0.5, cs[0].R, 1e-9)
		assert.InDelta(t, 1.0, cs[0].B, 1e-9)
	})

	t.Run("scaled_to_255", func(t *testing.T) {
		cs, e := FromFloats([][]float64{{255, 136, 0}})
		require.NoError(t, e)
		assert.Equal(t, "#ff8800", cs[0].Hex())
	})

	t.Run("one_big_value_scales_all", func(t *testing.T) {
		cs, e := FromFloats([][]float64{{1, 1, 1}, {2, 1, 1}})
		require.NoError(t, e)
		assert.InDelta(t, 1.0/255, cs[0].R, 1e-9)
	})

	t.Run("negative_is_error", func(t *testing.T) {
		_, e := FromFloats([][]float64{{-0.1, 0, 0}})
		assert.Error(t, e)
	})

	t.Run("wrong_arity_is_error", func(t *testing.T) {
		_, e := FromFloats([][]float64{{0.1, 0.2}})
		assert.Error(t, e)
	})

	t.Run("quad_keeps_alpha", func(t *testing.T) {
		cs, e := FromFloats([][]float64{{0.1, 0.2, 0.3, 0.5}})
		require.NoError(t, e)
		assert.InDelta(t, 0.5, cs[0].A, 1e-9)
	})
}

func TestParseAll(t *testing.T) {
	cs, e := ParseAll([]string{"red", "#00ff00", "rgb(0, 0, 255)"})
	require.NoError(t, e)
	require.Len(t, cs, 3)
	assert.Equal(t, "#ff0000", cs[0].Hex())
	assert.Equal(t, "#00ff00", cs[1].Hex())
	assert.Equal(t, "#0000ff", cs[2].Hex())

	_, e = ParseAll([]string{"red", "nope"})
	assert.Error(t, e)
}
