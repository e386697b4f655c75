package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sinkhole/internal/palette"
)

const (
	csi         = "\033["
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Writer writes rows as raw escape sequences: a cursor move to the start of
// each row, a color directive whenever the active pair changes, then the
// glyphs. Output is buffered until the end of each frame.
type Writer struct {
	out     *bufio.Writer
	palette palette.Palette
	fg, bg  palette.Color
	colored bool
}

func NewWriter(w io.Writer, p palette.Palette) *Writer {
	return &Writer{out: bufio.NewWriter(w), palette: p}
}

// WriteFrame writes rows starting at terminal row 1 and flushes.
func (w *Writer) WriteFrame(rows [][]Run) error {
	for y, runs := range rows {
		w.moveTo(y+1, 1)
		for _, r := range runs {
			w.setColor(r.FG, r.BG)
			w.out.WriteString(strings.Repeat(string(r.Glyph), r.N))
		}
	}
	return w.out.Flush()
}

// Clear erases the screen and hides the cursor.
func (w *Writer) Clear() error {
	w.out.WriteString(clearScreen + hideCursor)
	return w.out.Flush()
}

// Reset restores default colors, homes and shows the cursor.
func (w *Writer) Reset() error {
	w.colored = false
	w.out.WriteString(csi + w.palette.SGR(palette.Default, palette.Default) + "m")
	w.moveTo(1, 1)
	w.out.WriteString(showCursor)
	return w.out.Flush()
}

func (w *Writer) moveTo(row, col int) {
	w.out.WriteString(csi + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
}

func (w *Writer) setColor(fg, bg palette.Color) {
	if w.colored && w.fg == fg && w.bg == bg {
		return
	}
	w.fg, w.bg, w.colored = fg, bg, true
	w.out.WriteString(csi + w.palette.SGR(fg, bg) + "m")
}
