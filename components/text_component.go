package components

import (
	"time"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// TextComponent owns one pool text that follows the owner's transform
type TextComponent struct {
	Base
	pool  RendererPool
	id    graphics.GraphicsID
	layer graphics.VisibilityLayer
}

// NewTextComponent acquires a text at the owner's position. No component is created on error
func NewTextComponent(owner *ComponentOwner, pool RendererPool, content string, font graphics.FontPath, characterSize uint, layer graphics.VisibilityLayer) (*TextComponent, error) {
	id, err := pool.AcquireText(owner.Transform.Position(), content, font, characterSize, layer)
	if err != nil {
		return nil, err
	}
	return &TextComponent{Base: NewBase(owner), pool: pool, id: id, layer: layer}, nil
}

func (t *TextComponent) GraphicsID() graphics.GraphicsID { return t.id }

func (t *TextComponent) LateUpdate(time.Duration) {
	if t.enabled {
		t.pool.SetPosition(t.id, t.owner.Transform.Position())
	}
}

func (t *TextComponent) SetText(content string) {
	t.pool.SetText(t.id, content)
}

func (t *TextComponent) SetColor(color graphics.Color) {
	t.pool.SetTextColor(t.id, color)
}

func (t *TextComponent) SetVisibility(layer graphics.VisibilityLayer) {
	t.layer = layer
	if t.enabled {
		t.pool.SetVisibility(t.id, layer)
	}
}

func (t *TextComponent) Visibility() graphics.VisibilityLayer { return t.layer }

func (t *TextComponent) Enable() {
	t.Base.Enable()
	t.pool.SetVisibility(t.id, t.layer)
}

func (t *TextComponent) Disable() {
	t.Base.Disable()
	t.pool.SetVisibility(t.id, graphics.LayerInvisible)
}

func (t *TextComponent) Release() {
	t.pool.Release(t.id)
}
