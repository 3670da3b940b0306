package palette

import (
	"math"
	"sort"

	"github.com/mmuldo/colorbabel/color"
)

// colors closer than this CIEDE2000 difference read as the same color
const DefaultDe = 10

// Average returns the RMS average of a set of colors.
func Average(cs []color.Color) color.Color {
	if len(cs) == 0 {
		return color.Color{}
	}

	var r, g, b float64
	for _, c := range cs {
		r += c.R * c.R
		g += c.G * c.G
		b += c.B * c.B
	}

	n := float64(len(cs))
	return color.New(math.Sqrt(r/n), math.Sqrt(g/n), math.Sqrt(b/n))
}

type byDeviance struct {
	cs  []color.Color
	avg color.Color
}

func (d byDeviance) Len() int { return len(d.cs) }
func (d byDeviance) Less(i, j int) bool {
	return d.cs[i].Distance(d.avg) > d.cs[j].Distance(d.avg)
}
func (d byDeviance) Swap(i, j int) { d.cs[i], d.cs[j] = d.cs[j], d.cs[i] }

// ByDeviance orders colors most-different-first from their average.
func ByDeviance(cs []color.Color) []color.Color {
	out := make([]color.Color, len(cs))
	copy(out, cs)
	sort.Sort(byDeviance{out, Average(cs)})
	return out
}

// Group clusters colors whose CIEDE2000 difference from the cluster seed
// is under de.
func Group(cs []color.Color, de float64) [][]color.Color {
	g := make([][]color.Color, 0)
	done := make([]bool, len(cs))

	k := -1
	for i := range cs {
		if done[i] {
			continue
		}
		g = append(g, []color.Color{cs[i]})
		k++
		done[i] = true

		for j := i + 1; j < len(cs); j++ {
			if done[j] {
				continue
			}

			if cs[i].Distance(cs[j]) < de {
				g[k] = append(g[k], cs[j])
				done[j] = true
			}
		}
	}

	return g
}

// Distinct collapses a color list so that no two survivors are within de
// of each other; each cluster is replaced by its average.
func Distinct(cs []color.Color, de float64) []color.Color {
	groups := Group(cs, de)
	out := make([]color.Color, len(groups))
	for i, g := range groups {
		out[i] = Average(g)
	}
	return out
}
