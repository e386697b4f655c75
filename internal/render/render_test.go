package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphs(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(strings.Repeat(string(r.Glyph), r.N))
	}
	return b.String()
}

// 9x9 viewport: root plus one 1x1 field at (4,4).
func smallChain() field.Chain {
	return field.Build(9, 9, field.DefaultPadding, palette.Bright)
}

func TestRow_SmallChain(t *testing.T) {
	c := smallChain()
	require.Equal(t, 2, c.Len())

	want := []string{
		"▓▓▓▓▓▓▓▓▓",
		"▓▒▒▒▒▒▒▒▓",
		"▓▒░░░░░▒▓",
		"▓▒░░░░░▒▓",
		"▓▒░░▓░░▒▓",
		"▓▒░░▓░░▒▓",
		"▓▒░░░░░▒▓",
		"▓▒░░░░░▒▓",
		"▓▒▒▒▒▒▒▒▓",
		"▓▓▓▓▓▓▓▓▓",
	}
	for y, w := range want {
		assert.Equal(t, w, glyphs(Row(c, y)), "row %d", y)
	}
}

func TestRow_WindowColors(t *testing.T) {
	c := smallChain()
	root, inner := c.Fields[0], c.Fields[1]

	runs := Row(c, 4)
	require.Len(t, runs, 7)
	assert.Equal(t, Run{FG: root.FG, BG: root.BG, Glyph: Dotted, N: 2}, runs[2])
	assert.Equal(t, Run{FG: inner.FG, BG: inner.BG, Glyph: Heavy, N: 1}, runs[3])
	assert.Equal(t, Run{FG: root.FG, BG: root.BG, Glyph: Dotted, N: 2}, runs[4])
}

func TestRow_Coalesces(t *testing.T) {
	runs := Row(smallChain(), 0)
	require.Len(t, runs, 1)
	assert.Equal(t, 9, runs[0].N)
}

func TestRow_OutOfRange(t *testing.T) {
	c := smallChain()
	assert.Nil(t, Row(c, -1))
	assert.Nil(t, Row(c, 10))
}

func TestRow_CoverageAfterMoves(t *testing.T) {
	targets := []struct{ x, y int }{{0, 0}, {500, 500}, {-20, 40}, {33, 7}}
	for _, p := range palette.Palettes {
		c := field.Build(97, 41, field.DefaultPadding, p)
		for _, tg := range targets {
			c.Move(tg.x, tg.y)
			for y := 0; y <= c.Root().H; y++ {
				runs := Row(c, y)
				assert.NotEmpty(t, runs, "row %d", y)
				assert.Equal(t, c.Root().W, Width(runs), "row %d after move to (%d,%d)", y, tg.x, tg.y)
			}
		}
	}
}

func TestRow_TinyViewports(t *testing.T) {
	for _, s := range []struct{ w, h int }{{1, 1}, {2, 5}, {3, 3}, {1, 6}} {
		c := field.Build(s.w, s.h, field.DefaultPadding, palette.Bright)
		for y := 0; y <= s.h; y++ {
			assert.Equal(t, s.w, Width(Row(c, y)), "%dx%d row %d", s.w, s.h, y)
		}
	}
}

func TestFrame_Rows(t *testing.T) {
	c := field.Build(40, 30, field.DefaultPadding, palette.Bright)
	assert.Len(t, Frame(c), 31)
	assert.Len(t, Rows(c, 30), 30)
	assert.Len(t, Rows(c, 100), 31)
}

func TestWriter_Frame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, palette.Bright)
	require.NoError(t, w.WriteFrame(Frame(smallChain())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\033[1;1H\033[91;103m▓▓▓"))
	assert.Contains(t, out, "\033[10;1H")
	assert.Equal(t, 3, strings.Count(out, "\033[91;103m"), "root color set once, then restored after each window")
	assert.Equal(t, 2, strings.Count(out, "\033[93;102m"), "inner color set once per window row")
}

func TestWriter_Reset(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, palette.Extended)
	require.NoError(t, w.Reset())
	assert.Equal(t, "\033[39;49m\033[1;1H"+showCursor, buf.String())
}

func TestView_Shape(t *testing.T) {
	c := field.Build(40, 30, field.DefaultPadding, palette.Extended)
	view := View(Rows(c, 30), palette.Extended)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 30)
	for i, l := range lines {
		assert.Equal(t, 40, lipgloss.Width(l), "line %d", i)
	}
}
