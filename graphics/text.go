package graphics

// Text is a single-line string drawn with a font at a character size in world units
type Text struct {
	id            GraphicsID
	position      Vector2f
	content       string
	font          *Font
	characterSize uint
	fillColor     Color
}

// NewText creates a black text. The font must stay alive while the text exists
func NewText(id GraphicsID, position Vector2f, content string, font *Font, characterSize uint) *Text {
	return &Text{
		id:            id,
		position:      position,
		content:       content,
		font:          font,
		characterSize: characterSize,
		fillColor:     Black,
	}
}

func (t *Text) GraphicsID() GraphicsID { return t.id }

func (t *Text) Position() Vector2f { return t.position }

func (t *Text) SetPosition(position Vector2f) { t.position = position }

func (t *Text) Content() string { return t.content }

func (t *Text) SetContent(content string) { t.content = content }

func (t *Text) Font() *Font { return t.font }

func (t *Text) CharacterSize() uint { return t.characterSize }

func (t *Text) FillColor() Color { return t.fillColor }

func (t *Text) SetFillColor(color Color) { t.fillColor = color }

func (t *Text) Render(ctx ContextRenderer) {
	ctx.Draw(t)
}

func (*Text) sealed() {}
