package graphics

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

// AnimationType names one texture sequence of an animated shape
type AnimationType uint8

const (
	AnimationIdle AnimationType = iota
	AnimationWalk
)

var animationNames = [...]string{
	AnimationIdle: "idle",
	AnimationWalk: "walk",
}

func (a AnimationType) String() string {
	if int(a) < len(animationNames) {
		return animationNames[a]
	}
	return fmt.Sprintf("animation(%d)", uint8(a))
}

func (a AnimationType) MarshalText() ([]byte, error) {
	if int(a) >= len(animationNames) {
		return nil, fmt.Errorf("%w: type %d", ErrInvalidAnimation, uint8(a))
	}
	return []byte(animationNames[a]), nil
}

func (a *AnimationType) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range animationNames {
		if n == name {
			*a = AnimationType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown type %q", ErrInvalidAnimation, name)
}

// AnimationDirection is the way an animated shape faces. Textures are drawn facing right
type AnimationDirection uint8

const (
	DirectionRight AnimationDirection = iota
	DirectionLeft
)

func (d AnimationDirection) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// AnimationSettings describes a numbered texture sequence. FirstTexture carries the
// number of the first frame as the last digits of its file name, e.g. walk_1.png or
// walk_01.png; the following frames count up from it keeping the zero padding
type AnimationSettings struct {
	Type         AnimationType
	FirstTexture TexturePath
	Count        int
	Interval     time.Duration
}

// Frames expands the settings into Count texture paths
func (s AnimationSettings) Frames() ([]TexturePath, error) {
	if s.Count < 1 {
		return nil, fmt.Errorf("%w: %s needs at least one texture, got %d", ErrInvalidAnimation, s.Type, s.Count)
	}
	if s.Interval <= 0 {
		return nil, fmt.Errorf("%w: %s interval must be positive, got %s", ErrInvalidAnimation, s.Type, s.Interval)
	}
	if s.FirstTexture == "" {
		return nil, fmt.Errorf("%w: %s has no first texture", ErrInvalidAnimation, s.Type)
	}
	if s.Count == 1 {
		return []TexturePath{s.FirstTexture}, nil
	}

	p := string(s.FirstTexture)
	ext := path.Ext(p)
	stem := strings.TrimSuffix(p, ext)
	digits := len(stem) - len(strings.TrimRight(stem, "0123456789"))
	if digits == 0 {
		return nil, fmt.Errorf("%w: %s first texture %q has no frame number", ErrInvalidAnimation, s.Type, p)
	}
	prefix := stem[:len(stem)-digits]
	first, err := strconv.Atoi(stem[len(stem)-digits:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s first texture %q: %v", ErrInvalidAnimation, s.Type, p, err)
	}

	frames := make([]TexturePath, s.Count)
	for i := range frames {
		frames[i] = TexturePath(fmt.Sprintf("%s%0*d%s", prefix, digits, first+i, ext))
	}
	return frames, nil
}
