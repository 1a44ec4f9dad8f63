package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// Built-in font paths, resolved without touching the filesystem
const (
	FontGoRegular graphics.FontPath = "builtin:goregular"
	FontGoBold    graphics.FontPath = "builtin:gobold"
	FontGoMono    graphics.FontPath = "builtin:gomono"
	FontFixed     graphics.FontPath = "builtin:fixed"
	FontTerminal  graphics.FontPath = "builtin:terminal"
)

const builtinPrefix = "builtin:"

var builtinOutlines = map[graphics.FontPath][]byte{
	FontGoRegular: goregular.TTF,
	FontGoBold:    gobold.TTF,
	FontGoMono:    gomono.TTF,
}

// FontStorage parses TrueType/OpenType files from an fs.FS and caches them by path.
// Paths with the "builtin:" prefix name fonts compiled into the binary
type FontStorage struct {
	fsys fs.FS

	mu    sync.Mutex
	fonts map[graphics.FontPath]*graphics.Font
}

// NewFontStorage creates a storage reading from fsys. fsys may be nil when only
// built-in fonts are used
func NewFontStorage(fsys fs.FS) *FontStorage {
	return &FontStorage{
		fsys:  fsys,
		fonts: make(map[graphics.FontPath]*graphics.Font),
	}
}

// GetFont returns the cached font or loads it on first use
func (s *FontStorage) GetFont(p graphics.FontPath) (*graphics.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fonts[p]; ok {
		return f, nil
	}

	f, err := s.load(p)
	if err != nil {
		graphics.Logger().Warn("font load failed", "path", p, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", graphics.ErrFontNotAvailable, p, err)
	}
	s.fonts[p] = f
	graphics.Logger().Debug("font loaded", "path", p, "kind", f.Kind())
	return f, nil
}

// Preload loads every path eagerly. All failures are reported together
func (s *FontStorage) Preload(paths ...graphics.FontPath) error {
	var errs []error
	for _, p := range paths {
		if _, err := s.GetFont(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of cached fonts
func (s *FontStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fonts)
}

func (s *FontStorage) load(p graphics.FontPath) (*graphics.Font, error) {
	if strings.HasPrefix(string(p), builtinPrefix) {
		return loadBuiltin(p)
	}

	switch strings.ToLower(path.Ext(string(p))) {
	case ".ttf", ".otf":
	default:
		return nil, fmt.Errorf("unsupported font format")
	}
	if s.fsys == nil || !fs.ValidPath(string(p)) {
		return nil, fmt.Errorf("invalid path")
	}
	data, err := fs.ReadFile(s.fsys, string(p))
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return graphics.NewOutlineFont(p, parsed), nil
}

func loadBuiltin(p graphics.FontPath) (*graphics.Font, error) {
	switch p {
	case FontFixed:
		return graphics.NewBitmapFont(p, basicfont.Face7x13), nil
	case FontTerminal:
		return graphics.NewCellFont(p), nil
	}
	data, ok := builtinOutlines[p]
	if !ok {
		return nil, fmt.Errorf("unknown built-in font")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return graphics.NewOutlineFont(p, parsed), nil
}
