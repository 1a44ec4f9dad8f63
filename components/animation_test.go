package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/input"
)

var testSequences = []graphics.AnimationSettings{
	{Type: graphics.AnimationWalk, FirstTexture: "walk_1.png", Count: 3, Interval: 100 * time.Millisecond},
	{Type: graphics.AnimationIdle, FirstTexture: "idle_1.png", Count: 2, Interval: time.Second},
}

type animationFixture struct {
	pool      *graphics.RendererPool
	input     *input.Manager
	owner     *ComponentOwner
	graphics  *GraphicsComponent
	animation *AnimationComponent
}

func newAnimationFixture(t *testing.T, settings []graphics.AnimationSettings, textures ...graphics.TexturePath) *animationFixture {
	t.Helper()
	f := &animationFixture{
		pool: graphics.NewRendererPool(
			graphics.NewRecordingRenderer(),
			graphics.NewStubTextureStorage(textures...),
			graphics.NewStubFontStorage(),
		),
		input: input.NewManager(nil, 0),
	}
	f.owner = NewComponentOwner("player", graphics.Vec2(5, 5))
	f.graphics = AddComponent(f.owner, NewGraphicsComponent(f.owner, f.pool, graphics.Vec2(2, 2), graphics.Red, graphics.LayerFirst))
	animation, err := NewAnimationComponent(f.owner, settings)
	require.NoError(t, err)
	f.animation = AddComponent(f.owner, animation)
	require.NoError(t, f.owner.LoadDependentComponents())
	f.owner.Start()
	return f
}

func (f *animationFixture) texture(t *testing.T) graphics.TexturePath {
	t.Helper()
	path, ok := f.pool.TexturePath(f.graphics.GraphicsID())
	require.True(t, ok, "shape has no texture")
	return path
}

func allFrames() []graphics.TexturePath {
	return []graphics.TexturePath{"walk_1.png", "walk_2.png", "walk_3.png", "idle_1.png", "idle_2.png"}
}

func TestNewAnimationComponent_Invalid(t *testing.T) {
	o := NewComponentOwner("player", graphics.Vector2f{})

	_, err := NewAnimationComponent(o, nil)
	assert.ErrorIs(t, err, graphics.ErrInvalidAnimation)

	_, err = NewAnimationComponent(o, []graphics.AnimationSettings{testSequences[0], testSequences[0]})
	assert.ErrorIs(t, err, graphics.ErrInvalidAnimation)

	_, err = NewAnimationComponent(o, []graphics.AnimationSettings{{Type: graphics.AnimationWalk, FirstTexture: "walk.png", Count: 2, Interval: time.Second}})
	assert.ErrorIs(t, err, graphics.ErrInvalidAnimation)
}

func TestAnimationComponent_RequiresGraphics(t *testing.T) {
	o := NewComponentOwner("ghost", graphics.Vector2f{})
	a, err := NewAnimationComponent(o, testSequences)
	require.NoError(t, err)
	AddComponent(o, a)

	assert.ErrorIs(t, o.LoadDependentComponents(), ErrDependentComponentNotFound)
}

func TestAnimationComponent_StartsIdle(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)

	assert.Equal(t, graphics.AnimationIdle, f.animation.Animation())
	assert.Equal(t, graphics.TexturePath("idle_1.png"), f.texture(t))
}

func TestAnimationComponent_FrameAdvance(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)
	f.animation.SetAnimation(graphics.AnimationWalk)
	require.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))

	f.owner.Update(60 * time.Millisecond)
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))

	f.owner.Update(60 * time.Millisecond)
	assert.Equal(t, graphics.TexturePath("walk_2.png"), f.texture(t))

	// a long frame skips ahead and wraps
	f.owner.Update(200 * time.Millisecond)
	assert.Equal(t, 0, f.animation.Frame())
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))
}

func TestAnimationComponent_SwitchRestartsSequence(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)
	f.owner.Update(time.Second)
	require.Equal(t, graphics.TexturePath("idle_2.png"), f.texture(t))

	f.animation.SetAnimation(graphics.AnimationWalk)
	assert.Equal(t, 0, f.animation.Frame())
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))

	// switching to the playing sequence does not restart it
	f.owner.Update(100 * time.Millisecond)
	f.animation.SetAnimation(graphics.AnimationWalk)
	assert.Equal(t, 1, f.animation.Frame())
}

func TestAnimationComponent_UnconfiguredSequenceIgnored(t *testing.T) {
	f := newAnimationFixture(t, testSequences[:1], allFrames()...)
	require.Equal(t, graphics.AnimationWalk, f.animation.Animation())

	f.animation.SetAnimation(graphics.AnimationIdle)
	assert.Equal(t, graphics.AnimationWalk, f.animation.Animation())
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))
}

func TestAnimationComponent_MissingFrameSkipped(t *testing.T) {
	f := newAnimationFixture(t, testSequences, "walk_1.png", "walk_3.png", "idle_1.png", "idle_2.png")
	f.animation.SetAnimation(graphics.AnimationWalk)

	f.owner.Update(100 * time.Millisecond)
	assert.Equal(t, graphics.TexturePath("walk_3.png"), f.texture(t))
	assert.Equal(t, []graphics.TexturePath{"walk_1.png", "walk_3.png"}, f.animation.Frames(graphics.AnimationWalk))

	f.owner.Update(100 * time.Millisecond)
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))
}

func TestAnimationComponent_AllFramesMissingKeepsFillColor(t *testing.T) {
	f := newAnimationFixture(t, testSequences)

	_, textured := f.pool.TexturePath(f.graphics.GraphicsID())
	assert.False(t, textured)
	assert.Empty(t, f.animation.Frames(graphics.AnimationIdle))

	assert.NotPanics(t, func() {
		f.owner.Update(5 * time.Second)
		f.animation.SetAnimation(graphics.AnimationWalk)
		f.owner.Update(5 * time.Second)
	})
	_, textured = f.pool.TexturePath(f.graphics.GraphicsID())
	assert.False(t, textured)
}

func TestAnimationComponent_Disabled(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)
	f.animation.Disable()

	f.owner.Update(time.Second)
	assert.Equal(t, 0, f.animation.Frame())
}

func TestAnimationComponent_Direction(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)
	assert.Equal(t, graphics.DirectionRight, f.animation.Direction())

	f.animation.SetAnimationDirection(graphics.DirectionLeft)
	assert.Equal(t, graphics.DirectionLeft, f.animation.Direction())
}

func TestKeyboardMovement_DrivesAnimation(t *testing.T) {
	f := newAnimationFixture(t, testSequences, allFrames()...)
	m := AddComponent(f.owner, NewKeyboardMovementComponent(f.owner, f.input, 10))
	require.NoError(t, f.owner.LoadDependentComponents())

	m.HandleInputStatus(press(input.KeyLeft))
	assert.Equal(t, graphics.AnimationWalk, f.animation.Animation())
	assert.Equal(t, graphics.DirectionLeft, f.animation.Direction())
	assert.Equal(t, graphics.TexturePath("walk_1.png"), f.texture(t))

	// vertical movement walks without turning
	m.HandleInputStatus(press(input.KeyUp))
	assert.Equal(t, graphics.AnimationWalk, f.animation.Animation())
	assert.Equal(t, graphics.DirectionLeft, f.animation.Direction())

	m.HandleInputStatus(press(input.KeyRight))
	assert.Equal(t, graphics.DirectionRight, f.animation.Direction())

	m.HandleInputStatus(press(0))
	assert.Equal(t, graphics.AnimationIdle, f.animation.Animation())
	assert.Equal(t, graphics.TexturePath("idle_1.png"), f.texture(t))
	assert.Equal(t, graphics.DirectionRight, f.animation.Direction())
}
