package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// TerminalRenderer implements graphics.ContextRenderer on a tcell screen.
// Drawables are rasterized onto a Canvas at 2x2 pixels per cell; Display converts the
// canvas to quadrant characters and presents it
type TerminalRenderer struct {
	screen   tcell.Screen
	view     View
	canvas   *Canvas
	viewport viewport
	overlays []cellText
}

// NewTerminalRenderer wraps an initialized screen. view is the world area to show
func NewTerminalRenderer(screen tcell.Screen, view View) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		view:     view,
		canvas:   NewCanvas(0, 0),
		overlays: make([]cellText, 0, 16),
	}
}

// Initialize sizes the canvas to the screen and hides the cursor
func (r *TerminalRenderer) Initialize() {
	r.screen.HideCursor()
	cols, rows := r.screen.Size()
	r.canvas.Resize(cols, rows)
}

// SetView fits the world view to the current canvas
func (r *TerminalRenderer) SetView() {
	r.viewport = r.view.fit(r.canvas.Size())
}

// Clear fills the whole canvas, letterbox included, and drops queued cell text
func (r *TerminalRenderer) Clear(background graphics.Color) {
	r.canvas.Fill(background)
	r.overlays = r.overlays[:0]
}

// Draw rasterizes one drawable
func (r *TerminalRenderer) Draw(d graphics.Drawable) {
	switch v := d.(type) {
	case *graphics.RectangleShape:
		r.drawShape(v)
	case *graphics.Text:
		r.drawText(v)
	}
}

// SynchronizeViewSize adapts the canvas to a resized screen
func (r *TerminalRenderer) SynchronizeViewSize() {
	r.screen.Sync()
	cols, rows := r.screen.Size()
	r.canvas.Resize(cols, rows)
	r.SetView()
	graphics.Logger().Debug("view size synchronized", "cols", cols, "rows", rows)
}

// Canvas exposes the surface for inspection
func (r *TerminalRenderer) Canvas() *Canvas {
	return r.canvas
}

// Display converts the canvas to cells, writes queued cell text on top and shows the screen
func (r *TerminalRenderer) Display() {
	cols, rows := r.canvas.Cells()
	img := r.canvas.Image()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := cellAt(img, col, row)
			style := tcell.StyleDefault.Foreground(c.Fg.TcellColor()).Background(c.Bg.TcellColor())
			r.screen.SetContent(col, row, c.Rune, nil, style)
		}
	}

	for _, o := range r.overlays {
		r.writeCellText(o, cols, rows)
	}

	r.screen.Show()
}

// writeCellText keeps the background already in each cell so text sits on the scene
func (r *TerminalRenderer) writeCellText(o cellText, cols, rows int) {
	if o.row < 0 || o.row >= rows {
		return
	}
	x := o.col
	for _, ch := range o.content {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= cols {
			return
		}
		if x >= 0 {
			bg := cellAt(r.canvas.Image(), x, o.row).Bg
			style := tcell.StyleDefault.Foreground(o.fg.TcellColor()).Background(bg.TcellColor())
			r.screen.SetContent(x, o.row, ch, nil, style)
		}
		x += w
	}
}

func (r *TerminalRenderer) drawShape(s *graphics.RectangleShape) {
	rect := r.viewport.rect(s.Position(), s.Size())
	clip := r.viewport.bounds

	if s.Textured() {
		src := s.Texture().Image()
		if s.Mirrored() {
			src = mirrored{src}
		}
		r.canvas.DrawScaled(rect, clip, src)
	} else {
		r.canvas.FillRect(rect, clip, s.FillColor())
	}

	thickness, color := s.Outline()
	if px := r.viewport.length(thickness); px > 0 {
		r.canvas.StrokeRect(rect, clip, px, color)
	}
}

func (r *TerminalRenderer) drawText(t *graphics.Text) {
	if t.Content() == "" {
		return
	}
	pixelSize := r.viewport.length(float32(t.CharacterSize()))
	switch t.Font().Kind() {
	case graphics.FontCell:
		r.queueCellText(t)
	case graphics.FontBitmap:
		if pixelSize > 0 {
			r.drawBitmapText(t, pixelSize)
		}
	default:
		if pixelSize > 0 {
			r.drawOutlineText(t, pixelSize)
		}
	}
}
