package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Canvas is the RGBA surface drawables are rasterized onto.
// Two horizontal and two vertical pixels make one terminal cell
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates only if capacity is insufficient
func (c *Canvas) Resize(cols, rows int) {
	w, h := max(cols, 0)*2, max(rows, 0)*2
	size := w * h * 4
	if c.img != nil && cap(c.img.Pix) >= size {
		c.img.Pix = c.img.Pix[:size]
		c.img.Stride = w * 4
		c.img.Rect = image.Rect(0, 0, w, h)
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the pixels; valid until the next Resize
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the pixel dimensions
func (c *Canvas) Size() image.Point {
	return c.img.Rect.Size()
}

// Cells returns the dimensions in terminal cells
func (c *Canvas) Cells() (cols, rows int) {
	s := c.Size()
	return s.X / 2, s.Y / 2
}

// Fill replaces every pixel with col using exponential copy
func (c *Canvas) Fill(col color.Color) {
	if len(c.img.Pix) == 0 {
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	c.img.Pix[0], c.img.Pix[1], c.img.Pix[2], c.img.Pix[3] = rgba.R, rgba.G, rgba.B, rgba.A
	for filled := 4; filled < len(c.img.Pix); filled *= 2 {
		copy(c.img.Pix[filled:], c.img.Pix[:filled])
	}
}

// FillRect composites col over r, clipped to clip
func (c *Canvas) FillRect(r, clip image.Rectangle, col color.Color) {
	r = r.Intersect(clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokeRect draws a border of thickness pixels outside r, clipped to clip
func (c *Canvas) StrokeRect(r, clip image.Rectangle, thickness int, col color.Color) {
	if thickness <= 0 {
		return
	}
	outer := r.Inset(-thickness)
	c.FillRect(image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, r.Min.Y), clip, col)
	c.FillRect(image.Rect(outer.Min.X, r.Max.Y, outer.Max.X, outer.Max.Y), clip, col)
	c.FillRect(image.Rect(outer.Min.X, r.Min.Y, r.Min.X, r.Max.Y), clip, col)
	c.FillRect(image.Rect(r.Max.X, r.Min.Y, outer.Max.X, r.Max.Y), clip, col)
}

// DrawScaled stretches src over r with bilinear filtering, clipped to clip
func (c *Canvas) DrawScaled(r, clip image.Rectangle, src image.Image) {
	c.drawScaled(xdraw.ApproxBiLinear, r, clip, src)
}

// DrawScaledNearest stretches src over r keeping hard pixel edges, clipped to clip
func (c *Canvas) DrawScaledNearest(r, clip image.Rectangle, src image.Image) {
	c.drawScaled(xdraw.NearestNeighbor, r, clip, src)
}

func (c *Canvas) drawScaled(s xdraw.Scaler, r, clip image.Rectangle, src image.Image) {
	if r.Empty() || !r.Overlaps(clip) {
		return
	}
	dst := c.img.SubImage(clip.Intersect(c.img.Rect)).(*image.RGBA)
	s.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}

// Clipped returns a view of the canvas limited to clip, sharing pixels
func (c *Canvas) Clipped(clip image.Rectangle) *image.RGBA {
	return c.img.SubImage(clip.Intersect(c.img.Rect)).(*image.RGBA)
}
