package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-sprites/asset"
	"github.com/lixenwraith/vi-sprites/audio"
	"github.com/lixenwraith/vi-sprites/config"
	"github.com/lixenwraith/vi-sprites/game"
	"github.com/lixenwraith/vi-sprites/graphics"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	configFlag = flag.String("config", "", "Config file applied over the defaults and the user config")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SPRITES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := graphics.Logger()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	assets := os.DirFS(cfg.Assets.Root)
	textures := asset.NewTextureStorage(assets)
	fonts := asset.NewFontStorage(assets)

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	g, err := game.New(screen, cfg, textures, fonts, sounds)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("running", "fps", cfg.Render.FPS, "assets", cfg.Assets.Root)
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game loop stopped", "error", err)
		return 1
	}
	return 0
}
