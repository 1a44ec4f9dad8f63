package graphics

import "log/slog"

// poolEntry is the pool-owned record behind a GraphicsID
type poolEntry struct {
	drawable Drawable
	layer    VisibilityLayer
	seq      uint64
}

// orderEntry is one slot of a per-kind draw order, sorted by (layer, seq)
type orderEntry struct {
	id    GraphicsID
	layer VisibilityLayer
	seq   uint64
}

// RendererPool owns every drawable of the application and renders them once per frame.
//
// Callers hold only GraphicsIDs. Operations on ids that were never acquired or were
// already released are silent no-ops (mutators) or report absence (queries); the only
// errors are texture and font lookups failing during AcquireTextured, AcquireText and
// SetTexture, which leave the pool unchanged.
//
// A render pass draws every visible shape before any visible text, each kind ordered
// back to front by layer and by acquisition order within a layer.
//
// RendererPool is not safe for concurrent use
type RendererPool struct {
	ctx      ContextRenderer
	textures TextureStorage
	fonts    FontStorage

	clearColor Color
	logger     *slog.Logger

	entries map[GraphicsID]*poolEntry
	shapes  []orderEntry
	texts   []orderEntry
	seq     uint64
}

// NewRendererPool creates a pool and initializes ctx, then sets its view
func NewRendererPool(ctx ContextRenderer, textures TextureStorage, fonts FontStorage, opts ...PoolOption) *RendererPool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &RendererPool{
		ctx:        ctx,
		textures:   textures,
		fonts:      fonts,
		clearColor: o.clearColor,
		logger:     o.logger,
		entries:    make(map[GraphicsID]*poolEntry),
		shapes:     make([]orderEntry, 0, 16),
		texts:      make([]orderEntry, 0, 16),
	}

	p.ctx.Initialize()
	p.ctx.SetView()
	return p
}

func (p *RendererPool) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// Acquire creates a color-filled rectangle. Layer defaults to LayerBackground
func (p *RendererPool) Acquire(size, position Vector2f, color Color, layer ...VisibilityLayer) GraphicsID {
	id := GenerateID()
	p.add(NewRectangleShape(id, size, position, color), layerOrDefault(layer))
	return id
}

// AcquireTextured creates a rectangle bound to the texture at path.
// Returns an error wrapping ErrTextureNotAvailable when the storage cannot resolve it
func (p *RendererPool) AcquireTextured(size, position Vector2f, path TexturePath, layer ...VisibilityLayer) (GraphicsID, error) {
	texture, err := p.textures.GetTexture(path)
	if err != nil {
		p.log().Debug("acquire textured shape failed", "path", path, "error", err)
		return GraphicsID{}, err
	}
	id := GenerateID()
	p.add(NewTexturedRectangleShape(id, size, position, texture), layerOrDefault(layer))
	return id, nil
}

// AcquireText creates a text drawn with the font at path.
// Returns an error wrapping ErrFontNotAvailable when the storage cannot resolve it
func (p *RendererPool) AcquireText(position Vector2f, content string, path FontPath, characterSize uint, layer ...VisibilityLayer) (GraphicsID, error) {
	font, err := p.fonts.GetFont(path)
	if err != nil {
		p.log().Debug("acquire text failed", "path", path, "error", err)
		return GraphicsID{}, err
	}
	id := GenerateID()
	p.add(NewText(id, position, content, font, characterSize), layerOrDefault(layer))
	return id, nil
}

// Release removes the entry. Absent ids are ignored
func (p *RendererPool) Release(id GraphicsID) {
	e, ok := p.entries[id]
	if !ok {
		return
	}
	if e.layer.Visible() {
		p.unorder(e.drawable, id)
	}
	delete(p.entries, id)
	p.log().Debug("released drawable", "id", id)
}

// Position returns the entry position, false if id is not live
func (p *RendererPool) Position(id GraphicsID) (Vector2f, bool) {
	e, ok := p.entries[id]
	if !ok {
		return Vector2f{}, false
	}
	return e.drawable.Position(), true
}

func (p *RendererPool) SetPosition(id GraphicsID, position Vector2f) {
	if e, ok := p.entries[id]; ok {
		e.drawable.SetPosition(position)
	}
}

// SetColor changes the fill of a color-filled shape. Textured shapes and texts are ignored
func (p *RendererPool) SetColor(id GraphicsID, color Color) {
	if s, ok := p.shape(id); ok && !s.Textured() {
		s.SetFillColor(color)
	}
}

// SetTextColor changes the fill of a text. Shapes are ignored
func (p *RendererPool) SetTextColor(id GraphicsID, color Color) {
	if t, ok := p.text(id); ok {
		t.SetFillColor(color)
	}
}

// SetOutline sets the border of a shape. Texts are ignored
func (p *RendererPool) SetOutline(id GraphicsID, thickness float32, color Color) {
	if s, ok := p.shape(id); ok {
		s.SetOutline(thickness, color)
	}
}

// SetTexture binds the texture at path to a shape, turning a color-filled shape into a
// textured one. On lookup failure the shape is left unchanged and the error returned.
// Absent ids and texts are ignored without consulting the storage
func (p *RendererPool) SetTexture(id GraphicsID, path TexturePath) error {
	s, ok := p.shape(id)
	if !ok {
		return nil
	}
	texture, err := p.textures.GetTexture(path)
	if err != nil {
		p.log().Debug("set texture failed", "id", id, "path", path, "error", err)
		return err
	}
	s.SetTexture(texture)
	return nil
}

// TexturePath returns the path of the texture bound to a shape, false for color-filled
// shapes, texts and absent ids
func (p *RendererPool) TexturePath(id GraphicsID) (TexturePath, bool) {
	s, ok := p.shape(id)
	if !ok || !s.Textured() {
		return "", false
	}
	return s.Texture().Path(), true
}

// SetMirrored flips a shape's texture horizontally. Color fills look the same either way.
// Texts are ignored
func (p *RendererPool) SetMirrored(id GraphicsID, mirrored bool) {
	if s, ok := p.shape(id); ok {
		s.SetMirrored(mirrored)
	}
}

// SetText replaces the content of a text. Shapes are ignored
func (p *RendererPool) SetText(id GraphicsID, content string) {
	if t, ok := p.text(id); ok {
		t.SetContent(content)
	}
}

// SetVisibility moves the entry to layer. The entry is placed after every entry already
// in that layer. Setting the current layer again keeps its place
func (p *RendererPool) SetVisibility(id GraphicsID, layer VisibilityLayer) {
	e, ok := p.entries[id]
	if !ok {
		return
	}
	layer = normalizeLayer(layer)
	if e.layer == layer {
		return
	}
	if e.layer.Visible() {
		p.unorder(e.drawable, id)
	}
	p.seq++
	e.layer = layer
	e.seq = p.seq
	if layer.Visible() {
		p.order(e.drawable, orderEntry{id: id, layer: layer, seq: e.seq})
	}
}

// Visibility returns the current layer, false if id is not live
func (p *RendererPool) Visibility(id GraphicsID) (VisibilityLayer, bool) {
	e, ok := p.entries[id]
	if !ok {
		return LayerInvisible, false
	}
	return e.layer, true
}

// Contains reports whether id is live in this pool
func (p *RendererPool) Contains(id GraphicsID) bool {
	_, ok := p.entries[id]
	return ok
}

// Len returns the number of live entries, invisible ones included
func (p *RendererPool) Len() int {
	return len(p.entries)
}

// RenderOrder returns the ids the next render pass will draw, in draw order
func (p *RendererPool) RenderOrder() []GraphicsID {
	ids := make([]GraphicsID, 0, len(p.shapes)+len(p.texts))
	for _, o := range p.shapes {
		ids = append(ids, o.id)
	}
	for _, o := range p.texts {
		ids = append(ids, o.id)
	}
	return ids
}

// RenderAll clears the surface, restores the view, then draws shapes and texts back to front
func (p *RendererPool) RenderAll() {
	p.ctx.Clear(p.clearColor)
	p.ctx.SetView()

	for _, o := range p.shapes {
		p.entries[o.id].drawable.Render(p.ctx)
	}
	for _, o := range p.texts {
		p.entries[o.id].drawable.Render(p.ctx)
	}
}

// SynchronizeRenderingSize forwards a window resize to the surface
func (p *RendererPool) SynchronizeRenderingSize() {
	p.ctx.SynchronizeViewSize()
}

// ===== STORAGE =====

func (p *RendererPool) add(d Drawable, layer VisibilityLayer) {
	p.seq++
	e := &poolEntry{drawable: d, layer: layer, seq: p.seq}
	p.entries[d.GraphicsID()] = e
	if layer.Visible() {
		p.order(d, orderEntry{id: d.GraphicsID(), layer: layer, seq: e.seq})
	}
	p.log().Debug("acquired drawable", "id", d.GraphicsID(), "layer", layer)
}

func (p *RendererPool) shape(id GraphicsID) (*RectangleShape, bool) {
	e, ok := p.entries[id]
	if !ok {
		return nil, false
	}
	s, ok := e.drawable.(*RectangleShape)
	return s, ok
}

func (p *RendererPool) text(id GraphicsID) (*Text, bool) {
	e, ok := p.entries[id]
	if !ok {
		return nil, false
	}
	t, ok := e.drawable.(*Text)
	return t, ok
}

// bucket selects the draw order a drawable belongs to
func (p *RendererPool) bucket(d Drawable) *[]orderEntry {
	switch d.(type) {
	case *Text:
		return &p.texts
	default:
		return &p.shapes
	}
}

// order inserts entry keeping (layer, seq) ascending
func (p *RendererPool) order(d Drawable, entry orderEntry) {
	list := p.bucket(d)

	pos := len(*list)
	for i, o := range *list {
		if entry.layer < o.layer || (entry.layer == o.layer && entry.seq < o.seq) {
			pos = i
			break
		}
	}

	*list = append(*list, orderEntry{})
	copy((*list)[pos+1:], (*list)[pos:])
	(*list)[pos] = entry
}

func (p *RendererPool) unorder(d Drawable, id GraphicsID) {
	list := p.bucket(d)
	for i, o := range *list {
		if o.id == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

func layerOrDefault(layers []VisibilityLayer) VisibilityLayer {
	if len(layers) == 0 {
		return LayerBackground
	}
	return normalizeLayer(layers[0])
}

// normalizeLayer maps out-of-range values to LayerInvisible
func normalizeLayer(l VisibilityLayer) VisibilityLayer {
	if l > LayerInvisible {
		return LayerInvisible
	}
	return l
}
