package render

import (
	"image"
	"math"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// View is the world area shown on screen, in world units. It is scaled uniformly to
// fit the canvas and centered; leftover canvas is letterboxed
type View struct {
	Width, Height float32
}

// viewport is a View fitted to a concrete canvas size
type viewport struct {
	scale  float32
	bounds image.Rectangle
}

func (v View) fit(canvas image.Point) viewport {
	if v.Width <= 0 || v.Height <= 0 || canvas.X <= 0 || canvas.Y <= 0 {
		return viewport{scale: 1, bounds: image.Rectangle{Max: canvas}}
	}
	scale := min(float32(canvas.X)/v.Width, float32(canvas.Y)/v.Height)
	w := int(v.Width * scale)
	h := int(v.Height * scale)
	x := (canvas.X - w) / 2
	y := (canvas.Y - h) / 2
	return viewport{scale: scale, bounds: image.Rect(x, y, x+w, y+h)}
}

// point maps a world position to a canvas pixel
func (vp viewport) point(p graphics.Vector2f) image.Point {
	return image.Point{
		X: vp.bounds.Min.X + int(math.Floor(float64(p.X*vp.scale))),
		Y: vp.bounds.Min.Y + int(math.Floor(float64(p.Y*vp.scale))),
	}
}

// rect maps a world rectangle given by position and size to canvas pixels
func (vp viewport) rect(position, size graphics.Vector2f) image.Rectangle {
	return image.Rectangle{
		Min: vp.point(position),
		Max: vp.point(position.Add(size)),
	}.Canon()
}

// length maps a world length to whole pixels, rounding to nearest
func (vp viewport) length(v float32) int {
	return int(math.Round(float64(v * vp.scale)))
}
