package palette

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownPalette is returned by Lookup for a name with no registered palette.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Color identifies one palette entry. Its numeric value is a terminal color
// index whose meaning depends on the palette's Profile.
type Color int

// Default is the reserved sentinel for "terminal default color".
const Default Color = -1

// Base ANSI color indices.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Profile selects how colors are encoded on the wire.
type Profile int

const (
	// ProfileBright renders base indices with the bright SGR offsets (90+, 100+).
	ProfileBright Profile = iota
	// ProfileExtended renders 256-color indices (38;5;n / 48;5;n).
	ProfileExtended
)

// Palette is a fixed circular sequence of colors.
type Palette struct {
	Name    string
	Profile Profile
	Colors  []Color
}

// Available palettes
var (
	Bright = Palette{
		Name:    "bright",
		Profile: ProfileBright,
		Colors:  []Color{Red, Yellow, Green, Cyan, Blue, Magenta},
	}

	Extended = Palette{
		Name:    "extended",
		Profile: ProfileExtended,
		Colors: []Color{
			196, // red
			202, // orange
			226, // yellow
			118, // chartreuse
			46,  // green
			48,  // spring green
			51,  // cyan
			33,  // azure
			21,  // blue
			93,  // violet
			201, // magenta
			198, // rose
		},
	}

	Palettes = []Palette{Bright, Extended}
)

// Lookup returns the palette registered under name.
func Lookup(name string) (Palette, error) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// Names returns the registered palette names.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Len returns the cycle length.
func (p Palette) Len() int { return len(p.Colors) }

// First returns the starting color of the cycle, or Default for an empty palette.
func (p Palette) First() Color {
	if len(p.Colors) == 0 {
		return Default
	}
	return p.Colors[0]
}

// Next returns the color following c in the cycle. Colors outside the
// palette map to Default.
func (p Palette) Next(c Color) Color {
	for i, pc := range p.Colors {
		if pc == c {
			return p.Colors[(i+1)%len(p.Colors)]
		}
	}
	return Default
}

// SGR returns the select-graphic-rendition parameters that set c as
// foreground and bg as background, without the CSI prefix or trailing 'm'.
func (p Palette) SGR(fg, bg Color) string {
	return p.fgParam(fg) + ";" + p.bgParam(bg)
}

func (p Palette) fgParam(c Color) string {
	switch {
	case c == Default:
		return "39"
	case p.Profile == ProfileExtended:
		return "38;5;" + strconv.Itoa(int(c))
	default:
		return strconv.Itoa(90 + int(c))
	}
}

func (p Palette) bgParam(c Color) string {
	switch {
	case c == Default:
		return "49"
	case p.Profile == ProfileExtended:
		return "48;5;" + strconv.Itoa(int(c))
	default:
		return strconv.Itoa(100 + int(c))
	}
}

// TerminalColor converts c to a lipgloss color. Bright base indices map onto
// the high half of the 16-color table.
func (p Palette) TerminalColor(c Color) lipgloss.TerminalColor {
	switch {
	case c == Default:
		return lipgloss.NoColor{}
	case p.Profile == ProfileBright:
		return lipgloss.Color(strconv.Itoa(int(c) + 8))
	default:
		return lipgloss.Color(strconv.Itoa(int(c)))
	}
}
