package components

import (
	"fmt"

	"github.com/lixenwraith/vi-sprites/input"
)

// VisibilityToggleComponent hides and shows its owner's drawable each time key goes down.
// A held key toggles once
type VisibilityToggleComponent struct {
	Base
	input  InputSource
	key    input.InputKey
	target Component
	held   bool
}

// NewVisibilityToggleComponent registers with src; Release unregisters
func NewVisibilityToggleComponent(owner *ComponentOwner, src InputSource, key input.InputKey) *VisibilityToggleComponent {
	c := &VisibilityToggleComponent{Base: NewBase(owner), input: src, key: key}
	src.RegisterObserver(c)
	return c
}

// LoadDependentComponents targets the owner's TextComponent, or its GraphicsComponent
func (c *VisibilityToggleComponent) LoadDependentComponents() error {
	if t, ok := GetComponent[*TextComponent](c.owner); ok {
		c.target = t
		return nil
	}
	if g, ok := GetComponent[*GraphicsComponent](c.owner); ok {
		c.target = g
		return nil
	}
	return fmt.Errorf("visibility toggle: drawable component: %w", ErrDependentComponentNotFound)
}

func (c *VisibilityToggleComponent) HandleInputStatus(status *input.InputStatus) {
	pressed := status.IsKeyPressed(c.key)
	rising := pressed && !c.held
	c.held = pressed
	if !rising || !c.enabled || c.target == nil {
		return
	}

	if c.target.IsEnabled() {
		c.target.Disable()
	} else {
		c.target.Enable()
	}
}

// Shown reports whether the target drawable is currently enabled
func (c *VisibilityToggleComponent) Shown() bool {
	return c.target != nil && c.target.IsEnabled()
}

func (c *VisibilityToggleComponent) Release() {
	c.input.RemoveObserver(c)
}
