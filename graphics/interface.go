package graphics

// TextureStorage resolves texture paths. Failures wrap ErrTextureNotAvailable
type TextureStorage interface {
	GetTexture(path TexturePath) (*Texture, error)
}

// FontStorage resolves font paths. Failures wrap ErrFontNotAvailable
type FontStorage interface {
	GetFont(path FontPath) (*Font, error)
}

// ContextRenderer is the drawing surface a RendererPool renders onto.
// Implementations are expected to have succeeded initialization; failures past that
// point are not recoverable by the pool
type ContextRenderer interface {
	// Initialize prepares the surface, called once by NewRendererPool
	Initialize()

	// SetView restores the world-to-surface viewport
	SetView()

	// Clear fills the whole surface
	Clear(background Color)

	// Draw renders one drawable
	Draw(d Drawable)

	// SynchronizeViewSize adapts the surface to the current window size
	SynchronizeViewSize()
}

// Drawable is one of *RectangleShape or *Text. The set is closed
type Drawable interface {
	GraphicsID() GraphicsID
	Position() Vector2f
	SetPosition(position Vector2f)

	// Render issues exactly one draw call against ctx
	Render(ctx ContextRenderer)

	sealed()
}
