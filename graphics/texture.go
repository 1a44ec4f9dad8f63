package graphics

import "image"

// TexturePath names a texture known to a TextureStorage
type TexturePath string

// Texture is an immutable image shared by every shape bound to it
type Texture struct {
	path TexturePath
	img  image.Image
}

// NewTexture wraps a decoded image
func NewTexture(path TexturePath, img image.Image) *Texture {
	return &Texture{path: path, img: img}
}

func (t *Texture) Path() TexturePath {
	return t.path
}

func (t *Texture) Image() image.Image {
	return t.img
}

// Size returns the image dimensions in pixels
func (t *Texture) Size() image.Point {
	if t.img == nil {
		return image.Point{}
	}
	return t.img.Bounds().Size()
}
