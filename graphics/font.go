package graphics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontPath names a font known to a FontStorage
type FontPath string

// FontKind selects how a backend rasterizes text in this font
type FontKind uint8

const (
	// FontOutline is a scalable OpenType/TrueType font
	FontOutline FontKind = iota
	// FontBitmap is a fixed-size face, scaled by the backend
	FontBitmap
	// FontCell is the terminal's own font: text is written as cells, not pixels
	FontCell
)

func (k FontKind) String() string {
	switch k {
	case FontOutline:
		return "outline"
	case FontBitmap:
		return "bitmap"
	case FontCell:
		return "cell"
	}
	return "unknown"
}

// Font is a shared font resource. Texts keep a pointer to it for their whole life,
// so the storage that issued it must outlive them
type Font struct {
	path    FontPath
	kind    FontKind
	outline *opentype.Font
	bitmap  font.Face

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewOutlineFont wraps a parsed OpenType font
func NewOutlineFont(path FontPath, f *opentype.Font) *Font {
	return &Font{path: path, kind: FontOutline, outline: f, faces: make(map[int]font.Face)}
}

// NewBitmapFont wraps a fixed-size face
func NewBitmapFont(path FontPath, face font.Face) *Font {
	return &Font{path: path, kind: FontBitmap, bitmap: face}
}

// NewCellFont returns a font rendered natively by a character-cell backend
func NewCellFont(path FontPath) *Font {
	return &Font{path: path, kind: FontCell}
}

func (f *Font) Path() FontPath {
	return f.path
}

func (f *Font) Kind() FontKind {
	return f.kind
}

// Face returns a face for the requested pixel size. Outline faces are created once per
// size and cached; bitmap fonts always return their native face; cell fonts have none
func (f *Font) Face(pixelSize int) (font.Face, error) {
	switch f.kind {
	case FontBitmap:
		return f.bitmap, nil
	case FontCell:
		return nil, fmt.Errorf("font %s: cell font has no face", f.path)
	}
	if pixelSize < 1 {
		pixelSize = 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[pixelSize]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.outline, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %s size %d: %w", f.path, pixelSize, err)
	}
	f.faces[pixelSize] = face
	return face, nil
}
