package components

import (
	"time"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// RendererPool is the subset of graphics.RendererPool that components drive
type RendererPool interface {
	Acquire(size, position graphics.Vector2f, color graphics.Color, layer ...graphics.VisibilityLayer) graphics.GraphicsID
	AcquireTextured(size, position graphics.Vector2f, path graphics.TexturePath, layer ...graphics.VisibilityLayer) (graphics.GraphicsID, error)
	AcquireText(position graphics.Vector2f, content string, path graphics.FontPath, characterSize uint, layer ...graphics.VisibilityLayer) (graphics.GraphicsID, error)
	Release(id graphics.GraphicsID)
	SetPosition(id graphics.GraphicsID, position graphics.Vector2f)
	SetColor(id graphics.GraphicsID, color graphics.Color)
	SetTextColor(id graphics.GraphicsID, color graphics.Color)
	SetOutline(id graphics.GraphicsID, thickness float32, color graphics.Color)
	SetTexture(id graphics.GraphicsID, path graphics.TexturePath) error
	SetMirrored(id graphics.GraphicsID, mirrored bool)
	SetText(id graphics.GraphicsID, content string)
	SetVisibility(id graphics.GraphicsID, layer graphics.VisibilityLayer)
}

// GraphicsComponent owns one pool rectangle that follows the owner's transform
type GraphicsComponent struct {
	Base
	pool  RendererPool
	id    graphics.GraphicsID
	layer graphics.VisibilityLayer
}

// NewGraphicsComponent acquires a color-filled rectangle at the owner's position
func NewGraphicsComponent(owner *ComponentOwner, pool RendererPool, size graphics.Vector2f, color graphics.Color, layer graphics.VisibilityLayer) *GraphicsComponent {
	return &GraphicsComponent{
		Base:  NewBase(owner),
		pool:  pool,
		id:    pool.Acquire(size, owner.Transform.Position(), color, layer),
		layer: layer,
	}
}

// NewTexturedGraphicsComponent acquires a textured rectangle. No component is created on error
func NewTexturedGraphicsComponent(owner *ComponentOwner, pool RendererPool, size graphics.Vector2f, path graphics.TexturePath, layer graphics.VisibilityLayer) (*GraphicsComponent, error) {
	id, err := pool.AcquireTextured(size, owner.Transform.Position(), path, layer)
	if err != nil {
		return nil, err
	}
	return &GraphicsComponent{Base: NewBase(owner), pool: pool, id: id, layer: layer}, nil
}

func (g *GraphicsComponent) GraphicsID() graphics.GraphicsID { return g.id }

// LateUpdate pushes the transform position to the pool while enabled
func (g *GraphicsComponent) LateUpdate(time.Duration) {
	if g.enabled {
		g.pool.SetPosition(g.id, g.owner.Transform.Position())
	}
}

func (g *GraphicsComponent) SetColor(color graphics.Color) {
	g.pool.SetColor(g.id, color)
}

func (g *GraphicsComponent) SetOutline(thickness float32, color graphics.Color) {
	g.pool.SetOutline(g.id, thickness, color)
}

func (g *GraphicsComponent) SetTexture(path graphics.TexturePath) error {
	return g.pool.SetTexture(g.id, path)
}

func (g *GraphicsComponent) SetMirrored(mirrored bool) {
	g.pool.SetMirrored(g.id, mirrored)
}

// SetVisibility remembers layer and applies it unless the component is disabled
func (g *GraphicsComponent) SetVisibility(layer graphics.VisibilityLayer) {
	g.layer = layer
	if g.enabled {
		g.pool.SetVisibility(g.id, layer)
	}
}

// Visibility returns the remembered layer
func (g *GraphicsComponent) Visibility() graphics.VisibilityLayer { return g.layer }

func (g *GraphicsComponent) Enable() {
	g.Base.Enable()
	g.pool.SetVisibility(g.id, g.layer)
}

func (g *GraphicsComponent) Disable() {
	g.Base.Disable()
	g.pool.SetVisibility(g.id, graphics.LayerInvisible)
}

func (g *GraphicsComponent) Release() {
	g.pool.Release(g.id)
}
