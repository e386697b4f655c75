// Package field models the nested chain of rectangular fields that make up
// the sinkhole effect.
//
// A [Chain] is an ordered list of [Field] values from the outermost field,
// which always covers the whole viewport, to the innermost one. The field at
// index i+1 is nested inside the field at index i:
//
//   - [Build]: creates a chain from a viewport size and padding
//   - [Chain.Move]: pulls every nested field toward a target cell while
//     keeping it inside its parent
//   - [Chain.Recolor]: advances every field one step along the palette
//
// # Geometry
//
// At build time each successor is inset by twice the padding on every side,
// which leaves two cells of border plus one padding of slack for movement.
// Building stops once the current field is no wider or taller than four
// paddings.
//
// # Thread Safety
//
// Chain values are NOT thread-safe. They are owned by a single controller
// and replaced wholesale on resize.
package field
