package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// HexColor is a color written as "#rrggbb", "#rgb", "#rrggbbaa" or a basic color name
type HexColor graphics.Color

var namedColors = map[string]graphics.Color{
	"black":       graphics.Black,
	"white":       graphics.White,
	"red":         graphics.Red,
	"green":       graphics.Green,
	"blue":        graphics.Blue,
	"yellow":      graphics.Yellow,
	"transparent": graphics.Transparent,
}

func (h HexColor) Color() graphics.Color {
	return graphics.Color(h)
}

func (h *HexColor) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		*h = HexColor(c)
		return nil
	}

	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	if len(s) != 7 && len(s) != 4 {
		return fmt.Errorf("invalid color %q", string(text))
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}
	r, g, b := c.RGB255()
	*h = HexColor{R: r, G: g, B: b, A: alpha}
	return nil
}

func (h HexColor) MarshalText() ([]byte, error) {
	hex := colorful.Color{
		R: float64(h.R) / 255,
		G: float64(h.G) / 255,
		B: float64(h.B) / 255,
	}.Hex()
	if h.A != 255 {
		hex += fmt.Sprintf("%02x", h.A)
	}
	return []byte(hex), nil
}
