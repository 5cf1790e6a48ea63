// Package tui provides immediate-mode drawing over a terminal.Cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
// Region implements smalltext.Surface, so a widget can render straight into a buffer:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	line := root.Sub(2, 1, w-4, 1)
//	widget.Render(smalltext.Rect{Width: line.W, Height: 1}, line)
//
// StatusBar lays out prioritized label/value sections on one row, and
// CopyTo presents a finished region on any smalltext.Surface.
package tui
