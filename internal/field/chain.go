package field

import "github.com/san-kum/sinkhole/internal/palette"

// DefaultPadding is the inset margin used when none is configured.
const DefaultPadding = 2

// Field is one ring of the chain.
type Field struct {
	X, Y   int
	W, H   int
	FG, BG palette.Color
}

// Bottom returns the row of the field's bottom edge.
func (f Field) Bottom() int { return f.Y + f.H }

// Right returns the column just past the field's right edge.
func (f Field) Right() int { return f.X + f.W }

// Chain is the ordered containment sequence of fields, outermost first.
type Chain struct {
	Fields  []Field
	Padding int
	Palette palette.Palette
}

// Build creates the chain for a w×h viewport. The root covers the viewport
// and each following field is inset by 2*padding on every side, one palette
// step ahead of its parent, for as long as the current size stays above
// 4*padding in both dimensions.
func Build(w, h, padding int, p palette.Palette) Chain {
	fg := p.First()
	c := Chain{
		Padding: padding,
		Palette: p,
		Fields:  []Field{{X: 0, Y: 0, W: w, H: h, FG: fg, BG: p.Next(fg)}},
	}
	if padding <= 0 {
		return c
	}

	for w > padding*4 && h > padding*4 {
		parent := c.Fields[len(c.Fields)-1]
		w -= padding * 4
		h -= padding * 4
		c.Fields = append(c.Fields, Field{
			X:  parent.X + padding*2,
			Y:  parent.Y + padding*2,
			W:  w,
			H:  h,
			FG: p.Next(parent.FG),
			BG: p.Next(parent.BG),
		})
	}
	return c
}

// Len returns the number of fields.
func (c Chain) Len() int { return len(c.Fields) }

// Root returns the outermost field.
func (c Chain) Root() Field {
	if len(c.Fields) == 0 {
		return Field{}
	}
	return c.Fields[0]
}

// Clone returns a deep copy of the chain.
func (c Chain) Clone() Chain {
	fields := make([]Field, len(c.Fields))
	copy(fields, c.Fields)
	c.Fields = fields
	return c
}

// Recolor advances every field's colors one palette step and reports
// whether anything changed.
func (c *Chain) Recolor() bool {
	changed := false
	for i := range c.Fields {
		f := &c.Fields[i]
		fg, bg := c.Palette.Next(f.FG), c.Palette.Next(f.BG)
		if fg != f.FG || bg != f.BG {
			changed = true
		}
		f.FG, f.BG = fg, bg
	}
	return changed
}
