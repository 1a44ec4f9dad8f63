package components

import "github.com/lixenwraith/vi-sprites/graphics"

// TransformComponent is the owner's world position. Every owner has exactly one
type TransformComponent struct {
	Base
	position graphics.Vector2f
}

func NewTransformComponent(owner *ComponentOwner, position graphics.Vector2f) *TransformComponent {
	return &TransformComponent{Base: NewBase(owner), position: position}
}

func (t *TransformComponent) Position() graphics.Vector2f { return t.position }

func (t *TransformComponent) SetPosition(position graphics.Vector2f) { t.position = position }

// AddPosition moves by (dx, dy)
func (t *TransformComponent) AddPosition(dx, dy float32) {
	t.position.X += dx
	t.position.Y += dy
}
