package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-sprites/asset"
	"github.com/lixenwraith/vi-sprites/audio"
	"github.com/lixenwraith/vi-sprites/components"
	"github.com/lixenwraith/vi-sprites/config"
	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/input"
)

type recordedSounds struct {
	played []audio.Sound
}

func (r *recordedSounds) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

type stateFixture struct {
	pool   *graphics.RendererPool
	input  *input.Manager
	sounds *recordedSounds
	state  *State
}

func newStateFixture(t *testing.T, cfg *config.Config, textures ...graphics.TexturePath) *stateFixture {
	t.Helper()
	f := &stateFixture{
		pool: graphics.NewRendererPool(
			graphics.NewRecordingRenderer(),
			graphics.NewStubTextureStorage(append(textures, "textures/player.png")...),
			asset.NewFontStorage(nil),
		),
		input:  input.NewManager(nil, 0),
		sounds: &recordedSounds{},
	}
	state, err := NewState(cfg, f.pool, f.input, f.sounds)
	require.NoError(t, err)
	f.state = state
	return f
}

func (f *stateFixture) playerPosition(t *testing.T) graphics.Vector2f {
	t.Helper()
	return f.state.Player().Transform.Position()
}

func TestNewState_BuildsScene(t *testing.T) {
	cfg := defaultConfig(t)
	f := newStateFixture(t, cfg)

	// entities, player, hud
	want := len(cfg.Entities) + 2
	assert.Equal(t, want, f.state.Entities())
	assert.Equal(t, want, f.pool.Len())
	assert.Len(t, f.pool.RenderOrder(), want)
	// player movement and hud toggle
	assert.Equal(t, 2, f.input.ObserverCount())
	assert.Equal(t, cfg.Player.Position.Vector(), f.playerPosition(t))
	assert.True(t, f.state.HudShown())
}

func TestNewState_FontFallback(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Entities = []config.EntityConfig{{
		Name: "label", Kind: config.KindText, Text: "hi", Font: "fonts/missing.ttf", CharacterSize: 4,
	}}
	f := newStateFixture(t, cfg)

	assert.Equal(t, 3, f.pool.Len())
}

func TestNewState_FontFailureReleasesScene(t *testing.T) {
	cfg := defaultConfig(t)
	pool := graphics.NewRendererPool(graphics.NewRecordingRenderer(), graphics.NewStubTextureStorage(), graphics.NewStubFontStorage())
	in := input.NewManager(nil, 0)

	_, err := NewState(cfg, pool, in, nil)
	assert.ErrorIs(t, err, graphics.ErrFontNotAvailable)
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 0, in.ObserverCount())
}

func TestState_UpdateMovesPlayer(t *testing.T) {
	cfg := defaultConfig(t)
	f := newStateFixture(t, cfg)
	start := f.playerPosition(t)

	ev := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), 500*time.Millisecond)

	assert.Equal(t, uint64(1), f.state.Frame())
	assert.True(t, f.state.Movement().IsMoving())
	assert.InDelta(t, start.X+cfg.Player.Speed/2, f.playerPosition(t).X, 1e-3)
	assert.Equal(t, []audio.Sound{audio.SoundMove}, f.sounds.played)

	for _, id := range f.pool.RenderOrder() {
		if pos, _ := f.pool.Position(id); pos == f.playerPosition(t) {
			return
		}
	}
	t.Fatal("pool position was not synchronized with the player transform")
}

func TestState_BumpAtViewEdge(t *testing.T) {
	cfg := defaultConfig(t)
	f := newStateFixture(t, cfg)

	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), 10*time.Second)

	assert.Equal(t, float32(0), f.playerPosition(t).X)
	assert.Equal(t, []audio.Sound{audio.SoundMove, audio.SoundBump}, f.sounds.played)
}

func (f *stateFixture) playerTexture(t *testing.T) graphics.TexturePath {
	t.Helper()
	g, ok := components.GetComponent[*components.GraphicsComponent](f.state.Player())
	require.True(t, ok)
	path, ok := f.pool.TexturePath(g.GraphicsID())
	require.True(t, ok)
	return path
}

func TestState_PlayerAnimation(t *testing.T) {
	cfg := defaultConfig(t)
	f := newStateFixture(t, cfg,
		"textures/player_idle_1.png", "textures/player_idle_2.png",
		"textures/player_walk_1.png", "textures/player_walk_2.png",
	)
	assert.Equal(t, graphics.TexturePath("textures/player_idle_1.png"), f.playerTexture(t))

	ev := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), 0)
	assert.Equal(t, graphics.TexturePath("textures/player_walk_1.png"), f.playerTexture(t))

	f.state.Update(ev.When().Add(50*time.Millisecond), 150*time.Millisecond)
	assert.Equal(t, graphics.TexturePath("textures/player_walk_2.png"), f.playerTexture(t))

	// hold window over: back to idle
	f.state.Update(ev.When().Add(time.Second), 0)
	assert.False(t, f.state.Movement().IsMoving())
	assert.Equal(t, graphics.TexturePath("textures/player_idle_1.png"), f.playerTexture(t))
}

func TestState_MissingAnimationFramesKeepBaseTexture(t *testing.T) {
	f := newStateFixture(t, defaultConfig(t))

	ev := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), time.Second)

	assert.Equal(t, graphics.TexturePath("textures/player.png"), f.playerTexture(t))
}

func TestNewState_InvalidAnimationReleasesScene(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Player.Animations[0].Count = 0
	pool := graphics.NewRendererPool(graphics.NewRecordingRenderer(), graphics.NewStubTextureStorage(), asset.NewFontStorage(nil))
	in := input.NewManager(nil, 0)

	_, err := NewState(cfg, pool, in, nil)
	assert.ErrorIs(t, err, graphics.ErrInvalidAnimation)
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 0, in.ObserverCount())
}

func TestState_SpaceTogglesHud(t *testing.T) {
	f := newStateFixture(t, defaultConfig(t))
	hud := f.state.Hud().GraphicsID()

	ev := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), 0)

	assert.False(t, f.state.HudShown())
	layer, _ := f.pool.Visibility(hud)
	assert.Equal(t, graphics.LayerInvisible, layer)
	assert.NotContains(t, f.pool.RenderOrder(), hud)

	// auto-repeat within the hold window keeps it hidden
	f.state.Update(ev.When().Add(50*time.Millisecond), 0)
	assert.False(t, f.state.HudShown())

	f.state.Update(ev.When().Add(time.Second), 0)
	ev = tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	f.input.HandleEvent(ev)
	f.state.Update(ev.When(), 0)
	assert.True(t, f.state.HudShown())
	assert.Contains(t, f.pool.RenderOrder(), hud)
}

func TestState_Release(t *testing.T) {
	f := newStateFixture(t, defaultConfig(t))

	f.state.Release()
	assert.Equal(t, 0, f.pool.Len())
	assert.Equal(t, 0, f.input.ObserverCount())
	assert.Equal(t, 0, f.state.Entities())
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	cfg := defaultConfig(t)
	g, err := New(screen, cfg, asset.NewTextureStorage(nil), asset.NewFontStorage(nil), nil)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cols, rows := screen.Size()
	var sb strings.Builder
	for y := range rows {
		for x := range cols {
			mainc, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(mainc)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runAsync(g *Game, ctx context.Context) <-chan error {
	result := make(chan error, 1)
	go func() { result <- g.Run(ctx) }()
	return result
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	cfg := defaultConfig(t)
	cfg.Render.FPS = 0

	var g *Game
	var err error
	assert.NotPanics(t, func() {
		g, err = New(screen, cfg, asset.NewTextureStorage(nil), asset.NewFontStorage(nil), nil)
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "render.fps")
	assert.Nil(t, g)
}

func TestGame_StepRendersHud(t *testing.T) {
	g, screen := newTestGame(t)

	g.step(time.Now(), 0)

	assert.Contains(t, screenText(screen), "frame 1 | drawables")
}

func TestGame_QuitKey(t *testing.T) {
	g, screen := newTestGame(t)
	result := runAsync(g, context.Background())

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("game did not quit")
	}
}

func TestGame_ContextCancel(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	result := runAsync(g, ctx)

	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("game did not stop")
	}
}

func TestGame_ResizeResynchronizes(t *testing.T) {
	g, screen := newTestGame(t)

	screen.SetSize(60, 20)
	g.handleEvent(tcell.NewEventResize(60, 20))

	cols, rows := g.renderer.Canvas().Cells()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 20, rows)
}
