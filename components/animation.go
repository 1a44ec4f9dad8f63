package components

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-sprites/graphics"
)

type textureSequence struct {
	frames   []graphics.TexturePath
	interval time.Duration
}

// AnimationComponent cycles the textures of its owner's GraphicsComponent.
// A frame whose texture cannot be loaded is dropped from its sequence; once a sequence
// has no frames left the shape keeps whatever it shows, its fill color if it never had a
// texture
type AnimationComponent struct {
	Base
	graphics  *GraphicsComponent
	sequences map[graphics.AnimationType]*textureSequence

	current   graphics.AnimationType
	direction graphics.AnimationDirection
	frame     int
	elapsed   time.Duration
}

// NewAnimationComponent starts on the idle sequence when one is configured, otherwise on
// the first. Invalid or duplicate settings are an error
func NewAnimationComponent(owner *ComponentOwner, settings []graphics.AnimationSettings) (*AnimationComponent, error) {
	if len(settings) == 0 {
		return nil, fmt.Errorf("%w: no sequences", graphics.ErrInvalidAnimation)
	}
	c := &AnimationComponent{
		Base:      NewBase(owner),
		sequences: make(map[graphics.AnimationType]*textureSequence, len(settings)),
		current:   settings[0].Type,
	}
	for _, s := range settings {
		if _, dup := c.sequences[s.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate %s sequence", graphics.ErrInvalidAnimation, s.Type)
		}
		frames, err := s.Frames()
		if err != nil {
			return nil, err
		}
		c.sequences[s.Type] = &textureSequence{frames: frames, interval: s.Interval}
	}
	if _, ok := c.sequences[graphics.AnimationIdle]; ok {
		c.current = graphics.AnimationIdle
	}
	return c, nil
}

func (c *AnimationComponent) LoadDependentComponents() error {
	g, ok := GetComponent[*GraphicsComponent](c.owner)
	if !ok {
		return fmt.Errorf("animation: graphics component: %w", ErrDependentComponentNotFound)
	}
	c.graphics = g
	return nil
}

// Start shows the first frame of the current sequence
func (c *AnimationComponent) Start() {
	c.apply()
}

func (c *AnimationComponent) Update(dt time.Duration) {
	seq := c.sequences[c.current]
	if !c.enabled || len(seq.frames) < 2 {
		return
	}
	c.elapsed += dt
	if c.elapsed < seq.interval {
		return
	}
	steps := int(c.elapsed / seq.interval)
	c.elapsed -= time.Duration(steps) * seq.interval
	c.frame = (c.frame + steps) % len(seq.frames)
	c.apply()
}

// SetAnimation switches to the sequence of type a from its first frame.
// The current sequence is kept when a is already playing or has no sequence
func (c *AnimationComponent) SetAnimation(a graphics.AnimationType) {
	if a == c.current {
		return
	}
	if _, ok := c.sequences[a]; !ok {
		graphics.Logger().Debug("animation not configured", "owner", c.owner.Name(), "animation", a)
		return
	}
	c.current = a
	c.frame = 0
	c.elapsed = 0
	c.apply()
}

// SetAnimationDirection mirrors the texture when facing left
func (c *AnimationComponent) SetAnimationDirection(d graphics.AnimationDirection) {
	if d == c.direction {
		return
	}
	c.direction = d
	if c.graphics != nil {
		c.graphics.SetMirrored(d == graphics.DirectionLeft)
	}
}

func (c *AnimationComponent) Animation() graphics.AnimationType { return c.current }

func (c *AnimationComponent) Direction() graphics.AnimationDirection { return c.direction }

// Frame is the index of the shown frame within the current sequence
func (c *AnimationComponent) Frame() int { return c.frame }

// Frames returns the loadable frames of sequence a found so far
func (c *AnimationComponent) Frames(a graphics.AnimationType) []graphics.TexturePath {
	if seq, ok := c.sequences[a]; ok {
		return seq.frames
	}
	return nil
}

// apply binds the current frame, dropping frames that fail to load
func (c *AnimationComponent) apply() {
	if c.graphics == nil {
		return
	}
	seq := c.sequences[c.current]
	for len(seq.frames) > 0 {
		if c.frame >= len(seq.frames) {
			c.frame = 0
		}
		path := seq.frames[c.frame]
		err := c.graphics.SetTexture(path)
		if err == nil {
			return
		}
		if !errors.Is(err, graphics.ErrTextureNotAvailable) {
			graphics.Logger().Warn("animation frame failed", "owner", c.owner.Name(), "path", path, "error", err)
			return
		}
		graphics.Logger().Warn("animation frame unavailable, skipping", "owner", c.owner.Name(), "animation", c.current, "path", path)
		seq.frames = append(seq.frames[:c.frame], seq.frames[c.frame+1:]...)
	}
}
