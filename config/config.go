package config

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-sprites/graphics"
)

//go:embed default/config.toml
var configFS embed.FS

// Entity kinds
const (
	KindShape = "shape"
	KindText  = "text"
)

// Config is the full application configuration
type Config struct {
	Render   RenderConfig   `toml:"render"`
	Assets   AssetsConfig   `toml:"assets"`
	Player   PlayerConfig   `toml:"player"`
	Hud      HudConfig      `toml:"hud"`
	Audio    AudioConfig    `toml:"audio"`
	Entities []EntityConfig `toml:"entities"`
}

type RenderConfig struct {
	FPS        int      `toml:"fps"`
	ViewWidth  float32  `toml:"view_width"`
	ViewHeight float32  `toml:"view_height"`
	ClearColor HexColor `toml:"clear_color"`
}

type AssetsConfig struct {
	Root string `toml:"root"`
}

// EntityConfig describes one scene drawable. Kind selects which of the fields apply
type EntityConfig struct {
	Name             string                   `toml:"name"`
	Kind             string                   `toml:"kind"`
	Size             Vec2                     `toml:"size"`
	Position         Vec2                     `toml:"position"`
	Color            HexColor                 `toml:"color"`
	Texture          string                   `toml:"texture"`
	OutlineThickness float32                  `toml:"outline_thickness"`
	OutlineColor     HexColor                 `toml:"outline_color"`
	Text             string                   `toml:"text"`
	Font             string                   `toml:"font"`
	CharacterSize    uint                     `toml:"character_size"`
	Layer            graphics.VisibilityLayer `toml:"layer"`
}

// PlayerConfig is the keyboard driven shape
type PlayerConfig struct {
	EntityConfig
	Speed      float32           `toml:"speed"`
	Animations []AnimationConfig `toml:"animations"`
}

// AnimationConfig is one [[player.animations]] texture sequence
type AnimationConfig struct {
	Type         graphics.AnimationType `toml:"type"`
	FirstTexture string                 `toml:"first_texture"`
	Count        int                    `toml:"count"`
	// Interval is the time between frames in seconds
	Interval float64 `toml:"interval"`
}

func (a AnimationConfig) Settings() graphics.AnimationSettings {
	return graphics.AnimationSettings{
		Type:         a.Type,
		FirstTexture: graphics.TexturePath(a.FirstTexture),
		Count:        a.Count,
		Interval:     time.Duration(math.Round(a.Interval * float64(time.Second))),
	}
}

// AnimationSettings converts every configured sequence
func (p PlayerConfig) AnimationSettings() []graphics.AnimationSettings {
	settings := make([]graphics.AnimationSettings, len(p.Animations))
	for i, a := range p.Animations {
		settings[i] = a.Settings()
	}
	return settings
}

// HudConfig is the status text line
type HudConfig struct {
	Enabled       bool                     `toml:"enabled"`
	Font          string                   `toml:"font"`
	Position      Vec2                     `toml:"position"`
	Color         HexColor                 `toml:"color"`
	CharacterSize uint                     `toml:"character_size"`
	Layer         graphics.VisibilityLayer `toml:"layer"`
}

// AudioConfig toggles feedback sounds. Hosts without an audio device run silent
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Vec2 is a [x, y] pair in world units
type Vec2 [2]float32

func (v Vec2) Vector() graphics.Vector2f {
	return graphics.Vec2(v[0], v[1])
}

// entityOverlay receives array tables on their own so a user file replaces the list
// instead of decoding into the default entries
type entityOverlay struct {
	Entities []EntityConfig `toml:"entities"`
}

type animationOverlay struct {
	Player struct {
		Animations []AnimationConfig `toml:"animations"`
	} `toml:"player"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("load embedded config: %w", err)
	}
	return c, nil
}

// Load decodes data over the current values. Tables merge key by key, [[entities]] and
// [[player.animations]] replace the whole list. Unknown keys are an error
func (c *Config) Load(data string) error {
	meta, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("entities") {
		overlay := &entityOverlay{}
		if _, err := toml.Decode(data, overlay); err != nil {
			return err
		}
		c.Entities = overlay.Entities
	}
	if meta.IsDefined("player", "animations") {
		overlay := &animationOverlay{}
		if _, err := toml.Decode(data, overlay); err != nil {
			return err
		}
		c.Player.Animations = overlay.Player.Animations
	}

	c.normalize()
	return nil
}

func (c *Config) normalize() {
	if c.Player.Kind == "" {
		c.Player.Kind = KindShape
	}
	for i := range c.Entities {
		if c.Entities[i].Kind == "" {
			c.Entities[i].Kind = KindShape
		}
	}
}

// Validate reports every invalid value at once
func (c *Config) Validate() error {
	var errs []error

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		errs = append(errs, fmt.Errorf("render.fps must be in [1, 240], got %d", c.Render.FPS))
	}
	if c.Render.ViewWidth <= 0 || c.Render.ViewHeight <= 0 {
		errs = append(errs, fmt.Errorf("render view must be positive, got %gx%g", c.Render.ViewWidth, c.Render.ViewHeight))
	}

	if c.Player.Kind != KindShape {
		errs = append(errs, fmt.Errorf("player.kind must be %q, got %q", KindShape, c.Player.Kind))
	} else if err := c.Player.validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %g", c.Player.Speed))
	}
	seen := make(map[graphics.AnimationType]bool, len(c.Player.Animations))
	for i, a := range c.Player.Animations {
		if seen[a.Type] {
			errs = append(errs, fmt.Errorf("player.animations[%d]: duplicate type %s", i, a.Type))
		}
		seen[a.Type] = true
		if _, err := a.Settings().Frames(); err != nil {
			errs = append(errs, fmt.Errorf("player.animations[%d]: %w", i, err))
		}
	}

	if c.Hud.Enabled && c.Hud.Font == "" {
		errs = append(errs, errors.New("hud.font is required when the hud is enabled"))
	}

	for i, e := range c.Entities {
		if err := e.validate(); err != nil {
			errs = append(errs, fmt.Errorf("entities[%d] %q: %w", i, e.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (e EntityConfig) validate() error {
	switch e.Kind {
	case KindShape:
		if e.Size[0] <= 0 || e.Size[1] <= 0 {
			return fmt.Errorf("size must be positive, got %gx%g", e.Size[0], e.Size[1])
		}
		if e.OutlineThickness < 0 {
			return fmt.Errorf("outline_thickness must not be negative, got %g", e.OutlineThickness)
		}
	case KindText:
		if e.Font == "" {
			return errors.New("text entity needs a font")
		}
		if e.CharacterSize == 0 {
			return errors.New("text entity needs a character_size")
		}
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}
