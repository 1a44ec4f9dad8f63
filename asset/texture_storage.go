package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/vi-sprites/graphics"
)

// TextureStorage decodes images from an fs.FS and caches them by path.
// Supported formats: PNG, JPEG, GIF, BMP, WebP
type TextureStorage struct {
	fsys fs.FS

	mu       sync.Mutex
	textures map[graphics.TexturePath]*graphics.Texture
}

// NewTextureStorage creates a storage reading from fsys. A nil fsys serves nothing
func NewTextureStorage(fsys fs.FS) *TextureStorage {
	return &TextureStorage{
		fsys:     fsys,
		textures: make(map[graphics.TexturePath]*graphics.Texture),
	}
}

// GetTexture returns the cached texture or loads it on first use
func (s *TextureStorage) GetTexture(path graphics.TexturePath) (*graphics.Texture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.textures[path]; ok {
		return t, nil
	}

	t, err := s.load(path)
	if err != nil {
		graphics.Logger().Warn("texture load failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", graphics.ErrTextureNotAvailable, path, err)
	}
	s.textures[path] = t
	graphics.Logger().Debug("texture loaded", "path", path, "size", t.Size())
	return t, nil
}

// Preload loads every path eagerly. All failures are reported together
func (s *TextureStorage) Preload(paths ...graphics.TexturePath) error {
	var errs []error
	for _, p := range paths {
		if _, err := s.GetTexture(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of cached textures
func (s *TextureStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.textures)
}

func (s *TextureStorage) load(path graphics.TexturePath) (*graphics.Texture, error) {
	if !fs.ValidPath(string(path)) {
		return nil, fmt.Errorf("invalid path")
	}
	if s.fsys == nil {
		return nil, errors.New("no texture filesystem")
	}
	data, err := fs.ReadFile(s.fsys, string(path))
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}
	return graphics.NewTexture(path, img), nil
}
