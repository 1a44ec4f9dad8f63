package game

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-sprites/config"
	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/input"
	"github.com/lixenwraith/vi-sprites/render"
)

const eventBufferSize = 256

// Game wires the terminal, the pool and the scene, and runs the frame loop
type Game struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	pool     *graphics.RendererPool
	input    *input.Manager
	state    *State

	frameInterval time.Duration
	crashHandler  func(r any)
}

// New builds the game on an initialized screen. cfg is validated first
func New(screen tcell.Screen, cfg *config.Config, textures graphics.TextureStorage, fonts graphics.FontStorage, sounds Sounds) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	renderer := render.NewTerminalRenderer(screen, render.View{Width: cfg.Render.ViewWidth, Height: cfg.Render.ViewHeight})
	pool := graphics.NewRendererPool(renderer, textures, fonts,
		graphics.WithClearColor(cfg.Render.ClearColor.Color()),
	)
	in := input.NewManager(nil, 0)

	state, err := NewState(cfg, pool, in, sounds)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	return &Game{
		screen:        screen,
		renderer:      renderer,
		pool:          pool,
		input:         in,
		state:         state,
		frameInterval: time.Second / time.Duration(cfg.Render.FPS),
	}, nil
}

// SetCrashHandler replaces the default handler for panics in the event poller.
// The default prints the stack and exits
func (g *Game) SetCrashHandler(fn func(r any)) {
	g.crashHandler = fn
}

func (g *Game) State() *State { return g.state }

func (g *Game) Pool() *graphics.RendererPool { return g.pool }

// Run drives the loop until a quit key, ctx cancellation or the screen closing
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := g.pollEvents(done)

	last := time.Now()
	g.step(last, 0)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			g.step(now, now.Sub(last))
			last = now
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes
func (g *Game) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	eventChan := make(chan tcell.Event, eventBufferSize)
	go func() {
		defer close(eventChan)
		defer func() {
			if r := recover(); r != nil {
				g.crash(r)
			}
		}()

		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()
	return eventChan
}

func (g *Game) crash(r any) {
	if g.crashHandler != nil {
		g.crashHandler(r)
		return
	}
	g.screen.Fini()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// handleEvent returns false when the game should exit
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventResize:
		g.pool.SynchronizeRenderingSize()
		g.pool.RenderAll()
		g.renderer.Display()
	default:
		g.input.HandleEvent(ev)
	}
	return !g.input.QuitRequested()
}

// step runs one frame: update, late update, render, present
func (g *Game) step(now time.Time, dt time.Duration) {
	g.state.Update(now, dt)
	g.pool.RenderAll()
	g.renderer.Display()
}

// Close releases the scene. The screen stays with the caller
func (g *Game) Close() {
	g.state.Release()
}
