package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sinkhole/internal/palette"
)

type pair struct{ fg, bg palette.Color }

// Styler turns rows into lipgloss-styled text, reusing one style per color
// pair.
type Styler struct {
	palette palette.Palette
	styles  map[pair]lipgloss.Style
}

func NewStyler(p palette.Palette) *Styler {
	return &Styler{palette: p, styles: make(map[pair]lipgloss.Style)}
}

// View joins the styled rows with newlines.
func (s *Styler) View(rows [][]Run) string {
	var b strings.Builder
	for i, runs := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range runs {
			b.WriteString(s.style(r.FG, r.BG).Render(strings.Repeat(string(r.Glyph), r.N)))
		}
	}
	return b.String()
}

func (s *Styler) style(fg, bg palette.Color) lipgloss.Style {
	k := pair{fg, bg}
	if st, ok := s.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(s.palette.TerminalColor(fg)).
		Background(s.palette.TerminalColor(bg))
	s.styles[k] = st
	return st
}

// View renders rows with a fresh Styler.
func View(rows [][]Run, p palette.Palette) string {
	return NewStyler(p).View(rows)
}
