// texture-preview prints an asset texture to stdout the way the terminal renderer
// shows it: quadrant glyphs at 2x2 pixels per cell in truecolor.
//
// Usage:
//
//	texture-preview -root assets -w 24 textures/house.png
//	texture-preview -nearest textures/player.png | less -R
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/lixenwraith/vi-sprites/asset"
	"github.com/lixenwraith/vi-sprites/config"
	"github.com/lixenwraith/vi-sprites/graphics"
	"github.com/lixenwraith/vi-sprites/render"
)

func main() {
	var (
		root    string
		width   int
		nearest bool
		bgStr   string
	)

	flag.StringVar(&root, "root", "assets", "Asset root directory")
	flag.IntVar(&width, "w", 0, "Output width in columns (0 = half the texture width)")
	flag.BoolVar(&nearest, "nearest", false, "Nearest-neighbor scaling instead of bilinear")
	flag.StringVar(&bgStr, "bg", "#000000", "Background behind transparent pixels")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: texture-preview [options] <texture path>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := preview(root, graphics.TexturePath(flag.Arg(0)), width, nearest, bgStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func preview(root string, path graphics.TexturePath, width int, nearest bool, bgStr string) error {
	bg, err := parseBackground(bgStr)
	if err != nil {
		return err
	}

	tex, err := asset.NewTextureStorage(os.DirFS(root)).GetTexture(path)
	if err != nil {
		return err
	}

	size := tex.Size()
	cols, rows := cellSize(size, width)
	fmt.Fprintf(os.Stderr, "Texture: %s (%dx%d) -> %dx%d cells\n", path, size.X, size.Y, cols, rows)

	canvas := render.NewCanvas(cols, rows)
	canvas.Fill(bg)
	bounds := canvas.Image().Rect
	if nearest {
		canvas.DrawScaledNearest(bounds, bounds, tex.Image())
	} else {
		canvas.DrawScaled(bounds, bounds, tex.Image())
	}

	return canvas.WriteANSI(os.Stdout)
}

// cellSize keeps the texture aspect ratio; each cell holds 2x2 pixels
func cellSize(size image.Point, width int) (cols, rows int) {
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0
	}
	cols = width
	if cols <= 0 {
		cols = max((size.X+1)/2, 1)
	}
	rows = max(cols*size.Y/size.X, 1)
	return cols, rows
}

func parseBackground(s string) (color.Color, error) {
	var c config.HexColor
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return c.Color(), nil
}
