package components

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// ComponentOwner is an entity: a transform plus an ordered list of components.
// Lifecycle calls fan out in reverse insertion order, so the transform added first runs last
type ComponentOwner struct {
	name       string
	Transform  *TransformComponent
	components []Component
}

func NewComponentOwner(name string, position graphics.Vector2f) *ComponentOwner {
	o := &ComponentOwner{name: name}
	o.Transform = AddComponent(o, NewTransformComponent(o, position))
	return o
}

func (o *ComponentOwner) Name() string { return o.name }

// AddComponent appends c to o and returns it
func AddComponent[T Component](o *ComponentOwner, c T) T {
	o.components = append(o.components, c)
	return c
}

// GetComponent returns the first component of type T
func GetComponent[T Component](o *ComponentOwner) (T, bool) {
	for _, c := range o.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Components returns the component count, the transform included
func (o *ComponentOwner) Components() int {
	return len(o.components)
}

// LoadDependentComponents stops at the first failing component
func (o *ComponentOwner) LoadDependentComponents() error {
	for i := len(o.components) - 1; i >= 0; i-- {
		if err := o.components[i].LoadDependentComponents(); err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
	}
	return nil
}

func (o *ComponentOwner) Start() {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].Start()
	}
}

func (o *ComponentOwner) Update(dt time.Duration) {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].Update(dt)
	}
}

func (o *ComponentOwner) LateUpdate(dt time.Duration) {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].LateUpdate(dt)
	}
}

func (o *ComponentOwner) Enable() {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].Enable()
	}
}

func (o *ComponentOwner) Disable() {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].Disable()
	}
}

// Release releases every component and empties the owner
func (o *ComponentOwner) Release() {
	for i := len(o.components) - 1; i >= 0; i-- {
		o.components[i].Release()
	}
	o.components = nil
}
