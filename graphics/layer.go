package graphics

import (
	"fmt"
	"strings"
)

// VisibilityLayer determines draw order. Lower values draw first (further back)
type VisibilityLayer uint8

const (
	LayerBackground VisibilityLayer = iota
	LayerThird
	LayerSecond
	LayerFirst

	// LayerInvisible keeps an entry in the pool but out of every render pass
	LayerInvisible
)

var layerNames = [...]string{
	LayerBackground: "background",
	LayerThird:      "third",
	LayerSecond:     "second",
	LayerFirst:      "first",
	LayerInvisible:  "invisible",
}

// Visible returns false only for LayerInvisible
func (l VisibilityLayer) Visible() bool {
	return l != LayerInvisible
}

func (l VisibilityLayer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("layer(%d)", uint8(l))
}

// ParseVisibilityLayer maps a layer name to its value, case-insensitive
func ParseVisibilityLayer(name string) (VisibilityLayer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range layerNames {
		if n == name {
			return VisibilityLayer(i), nil
		}
	}
	return LayerBackground, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

func (l VisibilityLayer) MarshalText() ([]byte, error) {
	if int(l) >= len(layerNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, uint8(l))
	}
	return []byte(layerNames[l]), nil
}

func (l *VisibilityLayer) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibilityLayer(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
