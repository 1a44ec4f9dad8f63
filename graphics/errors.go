package graphics

import "errors"

// Resource failures raised by acquire and SetTexture. Storages wrap these with the
// offending path; match with errors.Is
var (
	ErrTextureNotAvailable = errors.New("texture not available")
	ErrFontNotAvailable    = errors.New("font not available")
)

// ErrUnknownLayer is returned when parsing an unrecognized layer name
var ErrUnknownLayer = errors.New("unknown visibility layer")

// ErrInvalidAnimation is returned for animation settings that cannot produce a frame sequence
var ErrInvalidAnimation = errors.New("invalid animation")
