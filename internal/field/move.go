package field

// Move pulls the top-left corner of every non-root field toward (tx, ty).
// Each field is clamped to the interior of its predecessor, inset by the
// padding, using the predecessor's already-updated position. The root never
// moves. Move reports whether any field changed position.
func (c *Chain) Move(tx, ty int) bool {
	if len(c.Fields) < 2 {
		return false
	}

	p := c.Padding
	root := c.Fields[0]
	minX, maxX := p, root.W-p
	minY, maxY := p, root.H-p

	changed := false
	for i := 1; i < len(c.Fields); i++ {
		f := &c.Fields[i]
		x := clamp(tx, minX, maxX-f.W)
		y := clamp(ty, minY, maxY-f.H)
		if x != f.X || y != f.Y {
			changed = true
		}
		f.X, f.Y = x, y

		minX, maxX = f.X+p, f.X+f.W-p
		minY, maxY = f.Y+p, f.Y+f.H-p
	}
	return changed
}

// clamp checks the lower bound first so lo wins if the band is inverted.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
