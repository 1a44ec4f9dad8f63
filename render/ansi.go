package render

import (
	"bufio"
	"fmt"
	"io"
)

// WriteANSI emits the canvas as truecolor quadrant cells, one line per row.
// SGR sequences are only written when a cell's colors differ from the previous cell
func (c *Canvas) WriteANSI(w io.Writer) error {
	bw := bufio.NewWriter(w)
	cols, rows := c.Cells()

	for row := 0; row < rows; row++ {
		var lastFg, lastBg RGB
		lastValid := false

		for col := 0; col < cols; col++ {
			cell := cellAt(c.img, col, row)
			if !lastValid || cell.Fg != lastFg || cell.Bg != lastBg {
				fmt.Fprintf(bw, "\x1b[0;38;2;%d;%d;%d;48;2;%d;%d;%dm",
					cell.Fg.R, cell.Fg.G, cell.Fg.B, cell.Bg.R, cell.Bg.G, cell.Bg.B)
				lastFg, lastBg, lastValid = cell.Fg, cell.Bg, true
			}
			bw.WriteRune(cell.Rune)
		}
		bw.WriteString("\x1b[0m\n")
	}

	return bw.Flush()
}
