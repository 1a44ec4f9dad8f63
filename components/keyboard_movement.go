package components

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/input"
)

// InputSource is where movement registers for input status
type InputSource interface {
	RegisterObserver(o input.Observer)
	RemoveObserver(o input.Observer)
}

// KeyboardMovementComponent moves the owner with the arrow keys and outlines its
// GraphicsComponent while moving. When the owner also has an AnimationComponent it plays
// the walk sequence while moving, idle otherwise, and faces the last horizontal direction
type KeyboardMovementComponent struct {
	Base
	input     InputSource
	graphics  *GraphicsComponent
	animation *AnimationComponent

	speed    float32
	velocity graphics.Vector2f
	moving   bool

	highlightThickness float32
	highlightColor     graphics.Color

	bounded    bool
	boundsMin  graphics.Vector2f
	boundsMax  graphics.Vector2f
	atBoundary bool

	onMoveStart func()
	onBump      func()
}

// NewKeyboardMovementComponent registers with src; Release unregisters
func NewKeyboardMovementComponent(owner *ComponentOwner, src InputSource, speed float32) *KeyboardMovementComponent {
	c := &KeyboardMovementComponent{
		Base:               NewBase(owner),
		input:              src,
		speed:              speed,
		highlightThickness: 1,
		highlightColor:     graphics.Black,
	}
	src.RegisterObserver(c)
	return c
}

func (c *KeyboardMovementComponent) LoadDependentComponents() error {
	g, ok := GetComponent[*GraphicsComponent](c.owner)
	if !ok {
		return fmt.Errorf("keyboard movement: graphics component: %w", ErrDependentComponentNotFound)
	}
	c.graphics = g
	c.animation, _ = GetComponent[*AnimationComponent](c.owner)
	return nil
}

func (c *KeyboardMovementComponent) Speed() float32 { return c.speed }

func (c *KeyboardMovementComponent) SetSpeed(speed float32) { c.speed = speed }

// Velocity is the current movement in world units per second
func (c *KeyboardMovementComponent) Velocity() graphics.Vector2f { return c.velocity }

func (c *KeyboardMovementComponent) IsMoving() bool { return c.moving }

// SetHighlight sets the outline shown while moving
func (c *KeyboardMovementComponent) SetHighlight(thickness float32, color graphics.Color) {
	c.highlightThickness = thickness
	c.highlightColor = color
}

// SetBounds clamps the transform position to [lo, hi]
func (c *KeyboardMovementComponent) SetBounds(lo, hi graphics.Vector2f) {
	c.bounded = true
	c.boundsMin = lo
	c.boundsMax = hi
}

// OnMoveStart is called when the owner starts moving
func (c *KeyboardMovementComponent) OnMoveStart(fn func()) { c.onMoveStart = fn }

// OnBump is called once each time movement is stopped by the bounds
func (c *KeyboardMovementComponent) OnBump(fn func()) { c.onBump = fn }

// HandleInputStatus implements input.Observer. Left wins over right, up over down
func (c *KeyboardMovementComponent) HandleInputStatus(status *input.InputStatus) {
	c.velocity = graphics.Vector2f{}
	if !c.enabled {
		c.setMoving(false)
		return
	}

	switch {
	case status.IsKeyPressed(input.KeyLeft):
		c.velocity.X = -c.speed
		c.face(graphics.DirectionLeft)
	case status.IsKeyPressed(input.KeyRight):
		c.velocity.X = c.speed
		c.face(graphics.DirectionRight)
	}
	switch {
	case status.IsKeyPressed(input.KeyUp):
		c.velocity.Y = -c.speed
	case status.IsKeyPressed(input.KeyDown):
		c.velocity.Y = c.speed
	}

	c.setMoving(c.velocity != graphics.Vector2f{})
}

func (c *KeyboardMovementComponent) face(d graphics.AnimationDirection) {
	if c.animation != nil {
		c.animation.SetAnimationDirection(d)
	}
}

func (c *KeyboardMovementComponent) setMoving(moving bool) {
	if moving == c.moving {
		return
	}
	c.moving = moving
	if !moving {
		c.atBoundary = false
	}

	if c.animation != nil {
		if moving {
			c.animation.SetAnimation(graphics.AnimationWalk)
		} else {
			c.animation.SetAnimation(graphics.AnimationIdle)
		}
	}

	if c.graphics != nil {
		if moving {
			c.graphics.SetOutline(c.highlightThickness, c.highlightColor)
		} else {
			c.graphics.SetOutline(0, c.highlightColor)
		}
	}
	if moving && c.onMoveStart != nil {
		c.onMoveStart()
	}
}

func (c *KeyboardMovementComponent) Update(dt time.Duration) {
	if !c.enabled || !c.moving {
		return
	}
	step := c.velocity.Scale(float32(dt.Seconds()))
	c.owner.Transform.AddPosition(step.X, step.Y)

	if !c.bounded {
		return
	}
	pos := c.owner.Transform.Position()
	clamped := graphics.Vec2(clamp(pos.X, c.boundsMin.X, c.boundsMax.X), clamp(pos.Y, c.boundsMin.Y, c.boundsMax.Y))
	hit := clamped != pos
	if hit {
		c.owner.Transform.SetPosition(clamped)
		if !c.atBoundary && c.onBump != nil {
			c.onBump()
		}
	}
	c.atBoundary = hit
}

func (c *KeyboardMovementComponent) Disable() {
	c.Base.Disable()
	c.velocity = graphics.Vector2f{}
	c.setMoving(false)
}

func (c *KeyboardMovementComponent) Release() {
	c.input.RemoveObserver(c)
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
