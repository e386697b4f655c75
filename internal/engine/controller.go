// Package engine owns the field chain and turns viewport, pointer and clock
// events into frames.
//
// The controller is driven by a single event loop. It re-renders only after
// an event actually changed the chain, so callers can skip terminal output
// when [Controller.Dirty] is false.
package engine

import (
	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/palette"
	"github.com/san-kum/sinkhole/internal/render"
)

// Controller holds the current chain and the last rendered frame.
type Controller struct {
	padding int
	palette palette.Palette
	chain   field.Chain
	styler  *render.Styler

	dirty     bool
	rows      int
	frame     [][]render.Run
	view      string
	viewStale bool
}

// New creates a controller with an empty viewport. Call Resize before
// rendering.
func New(padding int, p palette.Palette) *Controller {
	c := &Controller{
		padding: padding,
		palette: p,
		styler:  render.NewStyler(p),
	}
	c.chain = field.Build(0, 0, padding, p)
	c.dirty = true
	return c
}

// Resize replaces the chain with a fresh one built for a w×h viewport.
func (c *Controller) Resize(w, h int) {
	c.chain = field.Build(w, h, c.padding, c.palette)
	c.dirty = true
}

// Pointer moves the chain toward cell (x, y). It reports whether any field
// moved.
func (c *Controller) Pointer(x, y int) bool {
	if c.chain.Move(x, y) {
		c.dirty = true
		return true
	}
	return false
}

// Tick advances every field's colors one palette step.
func (c *Controller) Tick() bool {
	if c.chain.Recolor() {
		c.dirty = true
		return true
	}
	return false
}

// Dirty reports whether the chain changed since the last Frame or View.
func (c *Controller) Dirty() bool { return c.dirty }

// Chain returns a copy of the current chain.
func (c *Controller) Chain() field.Chain { return c.chain.Clone() }

// Frame returns rows 0 through rows-1, re-rendering only when the chain
// changed or a different row count is requested.
func (c *Controller) Frame(rows int) [][]render.Run {
	if c.dirty || rows != c.rows || c.frame == nil {
		c.frame = render.Rows(c.chain, rows)
		c.rows = rows
		c.dirty = false
		c.viewStale = true
	}
	return c.frame
}

// View returns Frame(rows) as styled text.
func (c *Controller) View(rows int) string {
	c.Frame(rows)
	if c.viewStale {
		c.view = c.styler.View(c.frame)
		c.viewStale = false
	}
	return c.view
}
