// Package render composites a field chain into terminal rows.
//
// A row is a sequence of [Run] values, each a colored stretch of a single
// glyph. Rows can be written as raw escape sequences with [Writer] or
// turned into a styled string with [View].
package render

import (
	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/palette"
)

// Ring glyphs, outermost first.
const (
	Heavy  = '▓'
	Shade  = '▒'
	Dotted = '░'
)

// Run is N repetitions of Glyph drawn in FG on BG.
type Run struct {
	FG, BG palette.Color
	Glyph  rune
	N      int
}

// Width returns the number of cells covered by runs.
func Width(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += r.N
	}
	return n
}

// Row renders absolute row y of the chain. It returns nil when y is outside
// the root's rows [0, H].
func Row(c field.Chain, y int) []Run {
	if c.Len() == 0 {
		return nil
	}
	root := c.Root()
	if y < root.Y || y > root.Bottom() {
		return nil
	}
	return row(c.Fields, y, make([]Run, 0, 4*c.Len()+1))
}

// Rows renders rows 0 through n-1, clipped to the root's rows.
func Rows(c field.Chain, n int) [][]Run {
	if c.Len() == 0 {
		return nil
	}
	if last := c.Root().Bottom() + 1; n > last {
		n = last
	}
	rows := make([][]Run, 0, max(n, 0))
	for y := 0; y < n; y++ {
		rows = append(rows, Row(c, y))
	}
	return rows
}

// Frame renders every row of the chain, 0 through the root's height inclusive.
func Frame(c field.Chain) [][]Run {
	return Rows(c, c.Root().Bottom()+1)
}

// row appends fields[0]'s contribution to row y, recursing into fields[1:]
// where the successor's span covers y.
func row(fields []field.Field, y int, out []Run) []Run {
	f := fields[0]
	emit := func(g rune, n int) {
		out = appendRun(out, Run{FG: f.FG, BG: f.BG, Glyph: g, N: n})
	}

	switch {
	case y == f.Y || y == f.Bottom():
		emit(Heavy, f.W)

	case y == f.Y+1 || y == f.Bottom()-1:
		left := min(1, f.W)
		right := min(1, f.W-left)
		emit(Heavy, left)
		emit(Shade, f.W-left-right)
		emit(Heavy, right)

	case len(fields) > 1 && y >= fields[1].Y && y <= fields[1].Bottom():
		next := fields[1]
		emit(Heavy, 1)
		emit(Shade, 1)
		emit(Dotted, next.X-f.X-2)
		out = row(fields[1:], y, out)
		emit(Dotted, f.Right()-2-next.Right())
		emit(Shade, 1)
		emit(Heavy, 1)

	default:
		left := min(2, f.W)
		right := min(2, f.W-left)
		out = border(out, f, left, false)
		emit(Dotted, f.W-left-right)
		out = border(out, f, right, true)
	}
	return out
}

// border appends up to two border cells: heavy then shade on the left,
// shade then heavy on the right. A single cell is always heavy.
func border(out []Run, f field.Field, n int, right bool) []Run {
	add := func(g rune) {
		out = appendRun(out, Run{FG: f.FG, BG: f.BG, Glyph: g, N: 1})
	}
	switch {
	case n == 1:
		add(Heavy)
	case n >= 2 && right:
		add(Shade)
		add(Heavy)
	case n >= 2:
		add(Heavy)
		add(Shade)
	}
	return out
}

// appendRun drops empty runs and merges r into the last run when they share
// colors and glyph.
func appendRun(out []Run, r Run) []Run {
	if r.N <= 0 {
		return out
	}
	if n := len(out); n > 0 {
		last := &out[n-1]
		if last.FG == r.FG && last.BG == r.BG && last.Glyph == r.Glyph {
			last.N += r.N
			return out
		}
	}
	return append(out, r)
}
