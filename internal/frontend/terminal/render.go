package terminal

import (
	"bytes"
	"io"

	"github.com/retroenv/retrochip8/internal/device"
)

const (
	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escReset       = "\x1b[0m"
)

// every character cell shows two display rows using half block characters
var blocks = [4]string{
	" ", // both off
	"▀", // upper on
	"▄", // lower on
	"█", // both on
}

// renderFrame writes the display to the terminal, starting at the top left
// corner. Lines end with carriage return and line feed as the terminal is in
// raw mode.
func renderFrame(w io.Writer, update device.Update) error {
	var buf bytes.Buffer
	buf.Grow(device.PixelCount)
	buf.WriteString(escCursorHome)

	for y := 0; y < device.Height; y += 2 {
		for x := 0; x < device.Width; x++ {
			var block int
			if update.Pixels[y*device.Width+x] != 0 {
				block |= 1
			}
			if y+1 < device.Height && update.Pixels[(y+1)*device.Width+x] != 0 {
				block |= 2
			}
			buf.WriteString(blocks[block])
		}
		buf.WriteString("\r\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}
