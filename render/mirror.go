package render

import (
	"image"
	"image/color"
)

// mirrored reads src flipped around its vertical axis
type mirrored struct {
	image.Image
}

func (m mirrored) At(x, y int) color.Color {
	b := m.Image.Bounds()
	return m.Image.At(b.Min.X+b.Max.X-1-x, y)
}
