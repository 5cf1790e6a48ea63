// Package terminal defines the cell model shared by off-screen buffers.
//
// A Cell holds a rune, 24-bit foreground and background colors, and an
// attribute bitmask. Zero colors stand for the terminal default. tcell.go
// converts between this model and tcell colors and attribute masks.
package terminal
