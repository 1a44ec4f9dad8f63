package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB stores explicit 8-bit color channels of one terminal cell half
type RGB struct {
	R, G, B uint8
}

// TcellColor converts to a truecolor tcell color; tcell downgrades on limited terminals
func (c RGB) TcellColor() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// colorToRGB converts any color.Color to RGB, undoing alpha premultiplication
func colorToRGB(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	return RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}

// colorDistanceSq computes squared Euclidean distance in RGB space
func colorDistanceSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
