package graphics

// RectangleShape is an axis-aligned rectangle filled with a color or a texture
type RectangleShape struct {
	id       GraphicsID
	position Vector2f
	size     Vector2f

	fillColor Color
	texture   *Texture
	mirrored  bool

	outlineThickness float32
	outlineColor     Color
}

// NewRectangleShape creates a color-filled rectangle
func NewRectangleShape(id GraphicsID, size, position Vector2f, color Color) *RectangleShape {
	return &RectangleShape{
		id:        id,
		size:      size,
		position:  position,
		fillColor: color,
	}
}

// NewTexturedRectangleShape creates a rectangle stretched over a texture
func NewTexturedRectangleShape(id GraphicsID, size, position Vector2f, texture *Texture) *RectangleShape {
	return &RectangleShape{
		id:        id,
		size:      size,
		position:  position,
		fillColor: White,
		texture:   texture,
	}
}

func (s *RectangleShape) GraphicsID() GraphicsID { return s.id }

func (s *RectangleShape) Position() Vector2f { return s.position }

func (s *RectangleShape) SetPosition(position Vector2f) { s.position = position }

func (s *RectangleShape) Size() Vector2f { return s.size }

func (s *RectangleShape) SetSize(size Vector2f) { s.size = size }

func (s *RectangleShape) FillColor() Color { return s.fillColor }

func (s *RectangleShape) SetFillColor(color Color) { s.fillColor = color }

// Texture returns the bound texture, nil for color-filled shapes
func (s *RectangleShape) Texture() *Texture { return s.texture }

// SetTexture binds a texture. The fill color resets to white so the texture is untinted
func (s *RectangleShape) SetTexture(texture *Texture) {
	s.texture = texture
	s.fillColor = White
}

// Textured reports whether a texture is bound
func (s *RectangleShape) Textured() bool { return s.texture != nil }

// Mirrored reports whether the texture is drawn flipped horizontally
func (s *RectangleShape) Mirrored() bool { return s.mirrored }

func (s *RectangleShape) SetMirrored(mirrored bool) { s.mirrored = mirrored }

// Outline returns thickness and color of the border drawn outside the rectangle
func (s *RectangleShape) Outline() (float32, Color) {
	return s.outlineThickness, s.outlineColor
}

// SetOutline sets the border. Non-positive thickness disables it
func (s *RectangleShape) SetOutline(thickness float32, color Color) {
	if thickness < 0 {
		thickness = 0
	}
	s.outlineThickness = thickness
	s.outlineColor = color
}

// Bounds returns the top-left and bottom-right corners, outline excluded
func (s *RectangleShape) Bounds() (min, max Vector2f) {
	return s.position, s.position.Add(s.size)
}

func (s *RectangleShape) Render(ctx ContextRenderer) {
	ctx.Draw(s)
}

func (*RectangleShape) sealed() {}
