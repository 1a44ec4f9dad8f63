package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-sprites/asset"
	"github.com/lixenwraith/vi-sprites/audio"
	"github.com/lixenwraith/vi-sprites/components"
	"github.com/lixenwraith/vi-sprites/config"
	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/input"
)

const hudHint = "arrows/hjkl move, space hides this, q quits"

// Sounds plays feedback effects
type Sounds interface {
	Play(s audio.Sound)
}

type silence struct{}

func (silence) Play(audio.Sound) {}

// Pool is what State needs from graphics.RendererPool beyond the component calls
type Pool interface {
	components.RendererPool
	Len() int
}

// State is the scene: every entity built from config plus the player and the HUD
type State struct {
	pool   Pool
	input  *input.Manager
	sounds Sounds

	owners   []*components.ComponentOwner
	player   *components.ComponentOwner
	movement *components.KeyboardMovementComponent
	hud      *components.TextComponent
	hudShow  *components.VisibilityToggleComponent

	frame uint64
}

// NewState builds the scene. A missing texture falls back to the configured color and
// a missing font falls back to the terminal font; both are logged as warnings
func NewState(cfg *config.Config, pool Pool, in *input.Manager, sounds Sounds) (*State, error) {
	if sounds == nil {
		sounds = silence{}
	}
	s := &State{pool: pool, input: in, sounds: sounds}

	for _, e := range cfg.Entities {
		o, err := s.buildEntity(e)
		if err != nil {
			s.Release()
			return nil, err
		}
		s.owners = append(s.owners, o)
	}

	if err := s.buildPlayer(cfg); err != nil {
		s.Release()
		return nil, err
	}

	if cfg.Hud.Enabled {
		if err := s.buildHud(cfg.Hud); err != nil {
			s.Release()
			return nil, err
		}
	}

	for _, o := range s.owners {
		if err := o.LoadDependentComponents(); err != nil {
			s.Release()
			return nil, err
		}
	}
	for _, o := range s.owners {
		o.Start()
	}

	graphics.Logger().Info("scene built", "entities", len(s.owners), "drawables", pool.Len())
	return s, nil
}

func (s *State) buildEntity(e config.EntityConfig) (*components.ComponentOwner, error) {
	o := components.NewComponentOwner(e.Name, e.Position.Vector())

	switch e.Kind {
	case config.KindText:
		t, err := s.acquireText(o, e.Text, e.Font, e.CharacterSize, e.Layer)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		t.SetColor(e.Color.Color())
		components.AddComponent(o, t)
	default:
		g := s.acquireShape(o, e)
		if e.OutlineThickness > 0 {
			g.SetOutline(e.OutlineThickness, e.OutlineColor.Color())
		}
		components.AddComponent(o, g)
	}
	return o, nil
}

func (s *State) buildPlayer(cfg *config.Config) error {
	p := cfg.Player
	o := components.NewComponentOwner("player", p.Position.Vector())
	g := components.AddComponent(o, s.acquireShape(o, p.EntityConfig))

	if len(p.Animations) > 0 {
		a, err := components.NewAnimationComponent(o, p.AnimationSettings())
		if err != nil {
			o.Release()
			return fmt.Errorf("player: %w", err)
		}
		components.AddComponent(o, a)
	}

	m := components.AddComponent(o, components.NewKeyboardMovementComponent(o, s.input, p.Speed))
	thickness := p.OutlineThickness
	if thickness <= 0 {
		thickness = 1
	}
	m.SetHighlight(thickness, p.OutlineColor.Color())
	m.SetBounds(graphics.Vector2f{}, graphics.Vec2(cfg.Render.ViewWidth-p.Size[0], cfg.Render.ViewHeight-p.Size[1]))
	m.OnMoveStart(func() { s.sounds.Play(audio.SoundMove) })
	m.OnBump(func() { s.sounds.Play(audio.SoundBump) })

	s.player = o
	s.movement = m
	s.owners = append(s.owners, o)
	graphics.Logger().Debug("player built", "id", g.GraphicsID(), "speed", p.Speed, "animations", len(p.Animations))
	return nil
}

func (s *State) buildHud(h config.HudConfig) error {
	o := components.NewComponentOwner("hud", h.Position.Vector())
	t, err := s.acquireText(o, s.hudText(), h.Font, h.CharacterSize, h.Layer)
	if err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	t.SetColor(h.Color.Color())
	s.hud = components.AddComponent(o, t)
	s.hudShow = components.AddComponent(o, components.NewVisibilityToggleComponent(o, s.input, input.KeySpace))
	s.owners = append(s.owners, o)
	return nil
}

// acquireShape prefers the texture and falls back to the fill color
func (s *State) acquireShape(o *components.ComponentOwner, e config.EntityConfig) *components.GraphicsComponent {
	size := e.Size.Vector()
	if e.Texture != "" {
		g, err := components.NewTexturedGraphicsComponent(o, s.pool, size, graphics.TexturePath(e.Texture), e.Layer)
		if err == nil {
			return g
		}
		graphics.Logger().Warn("texture unavailable, using color", "entity", o.Name(), "error", err)
	}
	return components.NewGraphicsComponent(o, s.pool, size, e.Color.Color(), e.Layer)
}

// acquireText falls back to the terminal font when font cannot be loaded
func (s *State) acquireText(o *components.ComponentOwner, content, font string, size uint, layer graphics.VisibilityLayer) (*components.TextComponent, error) {
	t, err := components.NewTextComponent(o, s.pool, content, graphics.FontPath(font), size, layer)
	if err == nil || !errors.Is(err, graphics.ErrFontNotAvailable) || graphics.FontPath(font) == asset.FontTerminal {
		return t, err
	}
	graphics.Logger().Warn("font unavailable, using terminal font", "entity", o.Name(), "error", err)
	return components.NewTextComponent(o, s.pool, content, asset.FontTerminal, size, layer)
}

// Update runs one frame of input, update and late update
func (s *State) Update(now time.Time, dt time.Duration) {
	s.input.Notify(now)

	for _, o := range s.owners {
		o.Update(dt)
	}

	s.frame++
	if s.hud != nil {
		s.hud.SetText(s.hudText())
	}

	for _, o := range s.owners {
		o.LateUpdate(dt)
	}
}

func (s *State) hudText() string {
	return fmt.Sprintf("frame %d | drawables %d | %s", s.frame, s.pool.Len(), hudHint)
}

// Frame is the number of completed updates
func (s *State) Frame() uint64 { return s.frame }

// Player is the keyboard driven entity
func (s *State) Player() *components.ComponentOwner { return s.player }

// Movement is the player's movement component
func (s *State) Movement() *components.KeyboardMovementComponent { return s.movement }

// Hud is the status text, nil when disabled
func (s *State) Hud() *components.TextComponent { return s.hud }

// HudShown reports whether the status text is visible
func (s *State) HudShown() bool { return s.hudShow != nil && s.hudShow.Shown() }

// Entities is the number of owners in the scene, player and HUD included
func (s *State) Entities() int { return len(s.owners) }

// Release frees every drawable and observer of the scene
func (s *State) Release() {
	for i := len(s.owners) - 1; i >= 0; i-- {
		s.owners[i].Release()
	}
	s.owners = nil
	s.player = nil
	s.movement = nil
	s.hud = nil
	s.hudShow = nil
}
