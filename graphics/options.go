package graphics

import "log/slog"

// PoolOption configures a RendererPool at creation
type PoolOption func(*poolOptions)

type poolOptions struct {
	clearColor Color
	logger     *slog.Logger
}

func defaultPoolOptions() poolOptions {
	return poolOptions{
		clearColor: White,
	}
}

// WithClearColor sets the color the surface is cleared to each frame. Default White
func WithClearColor(c Color) PoolOption {
	return func(o *poolOptions) {
		o.clearColor = c
	}
}

// WithLogger overrides the package logger for one pool
func WithLogger(l *slog.Logger) PoolOption {
	return func(o *poolOptions) {
		o.logger = l
	}
}
