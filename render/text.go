package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// cellText is a text written directly into terminal cells after canvas conversion
type cellText struct {
	col, row int
	content  string
	fg       RGB
}

// drawOutlineText rasterizes with a face sized to the character size in pixels.
// The text position is the top-left of the line box
func (r *TerminalRenderer) drawOutlineText(t *graphics.Text, pixelSize int) {
	face, err := t.Font().Face(pixelSize)
	if err != nil {
		graphics.Logger().Warn("text face unavailable", "id", t.GraphicsID(), "error", err)
		return
	}
	origin := r.viewport.point(t.Position())
	d := font.Drawer{
		Dst:  r.canvas.Clipped(r.viewport.bounds),
		Src:  image.NewUniform(t.FillColor()),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(t.Content())
}

// drawBitmapText renders at the face's native size, then scales to the character size
func (r *TerminalRenderer) drawBitmapText(t *graphics.Text, pixelSize int) {
	face, err := t.Font().Face(pixelSize)
	if err != nil {
		return
	}
	metrics := face.Metrics()
	nativeH := metrics.Height.Ceil()
	nativeW := font.MeasureString(face, t.Content()).Ceil()
	if nativeW <= 0 || nativeH <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, nativeW, nativeH))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(t.FillColor()),
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(t.Content())

	origin := r.viewport.point(t.Position())
	w := nativeW * pixelSize / nativeH
	target := image.Rect(origin.X, origin.Y, origin.X+max(w, 1), origin.Y+pixelSize)
	r.canvas.DrawScaledNearest(target, r.viewport.bounds, glyphs)
}

// queueCellText places the text on the cell under its position. Character size is
// ignored: the terminal decides glyph size
func (r *TerminalRenderer) queueCellText(t *graphics.Text) {
	p := r.viewport.point(t.Position())
	r.overlays = append(r.overlays, cellText{
		col:     p.X / 2,
		row:     p.Y / 2,
		content: t.Content(),
		fg:      colorToRGB(t.FillColor()),
	})
}
