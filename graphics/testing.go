package graphics

import (
	"fmt"
	"image"
)

// RendererCall names a ContextRenderer method invocation recorded by RecordingRenderer
type RendererCall string

const (
	CallInitialize          RendererCall = "initialize"
	CallSetView             RendererCall = "setView"
	CallClear               RendererCall = "clear"
	CallDraw                RendererCall = "draw"
	CallSynchronizeViewSize RendererCall = "synchronizeViewSize"
)

// RecordingRenderer is a ContextRenderer for tests that records every call
type RecordingRenderer struct {
	Calls       []RendererCall
	ClearColors []Color
	Drawn       []GraphicsID
}

// NewRecordingRenderer returns an empty recorder
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

func (r *RecordingRenderer) Initialize() { r.Calls = append(r.Calls, CallInitialize) }

func (r *RecordingRenderer) SetView() { r.Calls = append(r.Calls, CallSetView) }

func (r *RecordingRenderer) Clear(background Color) {
	r.Calls = append(r.Calls, CallClear)
	r.ClearColors = append(r.ClearColors, background)
}

func (r *RecordingRenderer) Draw(d Drawable) {
	r.Calls = append(r.Calls, CallDraw)
	r.Drawn = append(r.Drawn, d.GraphicsID())
}

func (r *RecordingRenderer) SynchronizeViewSize() {
	r.Calls = append(r.Calls, CallSynchronizeViewSize)
}

// Reset forgets recorded calls
func (r *RecordingRenderer) Reset() {
	r.Calls = r.Calls[:0]
	r.ClearColors = r.ClearColors[:0]
	r.Drawn = r.Drawn[:0]
}

// StubTextureStorage serves a fixed set of textures and counts lookups
type StubTextureStorage struct {
	Textures map[TexturePath]*Texture
	Lookups  int
}

// NewStubTextureStorage registers a 1x1 texture for each path
func NewStubTextureStorage(paths ...TexturePath) *StubTextureStorage {
	s := &StubTextureStorage{Textures: make(map[TexturePath]*Texture, len(paths))}
	for _, p := range paths {
		s.Textures[p] = NewTexture(p, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	}
	return s
}

func (s *StubTextureStorage) GetTexture(path TexturePath) (*Texture, error) {
	s.Lookups++
	if t, ok := s.Textures[path]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTextureNotAvailable, path)
}

// StubFontStorage serves a fixed set of cell fonts and counts lookups
type StubFontStorage struct {
	Fonts   map[FontPath]*Font
	Lookups int
}

// NewStubFontStorage registers a cell font for each path
func NewStubFontStorage(paths ...FontPath) *StubFontStorage {
	s := &StubFontStorage{Fonts: make(map[FontPath]*Font, len(paths))}
	for _, p := range paths {
		s.Fonts[p] = NewCellFont(p)
	}
	return s
}

func (s *StubFontStorage) GetFont(path FontPath) (*Font, error) {
	s.Lookups++
	if f, ok := s.Fonts[path]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFontNotAvailable, path)
}
