// Package viz runs the sinkhole effect as a Bubble Tea program.
//
// The program feeds terminal events into an [engine.Controller]:
//
//   - window size changes rebuild the field chain
//   - mouse motion drags the nested fields
//   - a periodic tick cycles every field's colors
//
// # Key Bindings
//
//	q, esc, ctrl+c - Quit
//
// Bubble Tea owns raw mode, the alternate screen and mouse reporting, and
// restores the terminal on exit.
package viz
