package image

import (
	"image"
	"image/png"
	"os"

	babel "github.com/mmuldo/colorbabel/color"
	"github.com/mmuldo/colorbabel/palette"
)

// Swatches renders colors as a sheet of square cells, perRow to a row.
func Swatches(cs []babel.Color, cell, perRow int) *image.RGBA {
	if perRow < 1 {
		perRow = 1
	}
	rows := (len(cs) + perRow - 1) / perRow

	sheet := image.NewRGBA(image.Rect(0, 0, perRow*cell, rows*cell))
	x := 0
	y := 0
	for _, c := range cs {
		for w := x; w-x < cell; w++ {
			for h := y; h-y < cell; h++ {
				sheet.Set(w, h, c)
			}
		}
		x = (x + cell) % (perRow * cell)
		if x == 0 {
			y += cell
		}
	}

	return sheet
}

// Gradient renders a continuous strip of the palette.
func Gradient(p *palette.Palette, w, h int) *image.RGBA {
	if w < 2 {
		w = 2
	}
	if h < 1 {
		h = 1
	}
	strip := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := p.At(float64(x) / float64(w-1))
		for y := 0; y < h; y++ {
			strip.Set(x, y, c)
		}
	}
	return strip
}

// WritePNG encodes an image to a PNG file at path.
func WritePNG(path string, i image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	return png.Encode(f, i)
}
