package render

import (
	"image"
	"math"
)

// quadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var quadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// quadrantCell is the terminal rendition of a 2x2 pixel block
type quadrantCell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// cellAt converts the 2x2 block whose top-left pixel is (2*col, 2*row)
func cellAt(img *image.RGBA, col, row int) quadrantCell {
	var block [4]RGB
	for i := range block {
		o := img.PixOffset(img.Rect.Min.X+col*2+i%2, img.Rect.Min.Y+row*2+i/2)
		block[i] = RGB{R: img.Pix[o], G: img.Pix[o+1], B: img.Pix[o+2]}
	}
	return bestQuadrant(block)
}

// bestQuadrant splits the block into the glyph's foreground pixels and the rest, each
// drawn in its mean color, and keeps the split with the least squared error.
// Uniform blocks become a blank cell. A non-uniform block is never fit better by the
// empty or full glyph than by a two-color split, so masks 0 and 15 are not tried
func bestQuadrant(block [4]RGB) quadrantCell {
	if block[0] == block[1] && block[0] == block[2] && block[0] == block[3] {
		return quadrantCell{Rune: ' ', Fg: block[0], Bg: block[0]}
	}

	best := quadrantCell{Rune: ' ', Bg: block[0]}
	bestErr := math.MaxInt
	for mask := 1; mask < 15; mask++ {
		fg, bg := splitMeans(block, mask)
		var errSum int
		for i, px := range block {
			if mask&(1<<i) != 0 {
				errSum += colorDistanceSq(px, fg)
			} else {
				errSum += colorDistanceSq(px, bg)
			}
		}
		// strict: ties keep the lower mask
		if errSum < bestErr {
			bestErr = errSum
			best = quadrantCell{Rune: quadrantChars[mask], Fg: fg, Bg: bg}
		}
	}
	return best
}

// splitMeans averages the pixels selected by mask and the remaining ones
func splitMeans(block [4]RGB, mask int) (fg, bg RGB) {
	var sum [2][3]int
	var n [2]int
	for i, px := range block {
		side := 1
		if mask&(1<<i) != 0 {
			side = 0
		}
		sum[side][0] += int(px.R)
		sum[side][1] += int(px.G)
		sum[side][2] += int(px.B)
		n[side]++
	}
	mean := func(side int) RGB {
		if n[side] == 0 {
			return RGB{}
		}
		return RGB{uint8(sum[side][0] / n[side]), uint8(sum[side][1] / n[side]), uint8(sum[side][2] / n[side])}
	}
	return mean(0), mean(1)
}
