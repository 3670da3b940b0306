package image

import (
	"fmt"
	"image"
	"sort"

	"github.com/esimov/colorquant"

	babel "github.com/mmuldo/colorbabel/color"
)

// ColorCount pairs a color with the number of sampled pixels it occupies
// in an image.
type ColorCount struct {
	Color babel.Color
	Count int
}

// ColorCountList sorts by descending prevalence.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int           { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool { return ccl[i].Count > ccl[j].Count }
func (ccl ColorCountList) Swap(i, j int)      { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Colors returns a slice of just the colors, in list order.
func (ccl ColorCountList) Colors() []babel.Color {
	cs := make([]babel.Color, len(ccl))
	for i, cc := range ccl {
		cs[i] = cc.Color
	}
	return cs
}

// Extract retrieves a set of colors of size num that best represent the
// image located at path, ranked by pixel prevalence.
func Extract(path string, num int) (ColorCountList, error) {
	i, e := Load(path)
	if e != nil {
		return nil, e
	}
	return ExtractImage(i, num, path)
}

// ExtractImage quantizes an already decoded image down to num colors.
// name is only used in error messages.
func ExtractImage(i image.Image, num int, name string) (ColorCountList, error) {
	// quantize image
	b := i.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(i, o, num, false, true)

	// map each image color to its prevalence; sampling every 5th pixel
	// is plenty for ranking
	m := make(map[babel.Color]int)
	w, h := o.Bounds().Max.X, o.Bounds().Max.Y
	for x := 0; x < w; x += 5 {
		for y := 0; y < h; y += 5 {
			m[babel.FromColor(o.At(x, y))]++
		}
	}
	if len(m) < num {
		return nil, fmt.Errorf("image at %s does not have enough variation to support a %d color palette", name, num)
	}

	return Rank(m), nil
}

// Rank converts a color-to-prevalence map to a ColorCountList sorted by
// descending count.
func Rank(m map[babel.Color]int) ColorCountList {
	ccl := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		ccl[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(ccl)
	return ccl
}
