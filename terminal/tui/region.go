package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/smalltext/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
// Region satisfies smalltext.Surface
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// at returns the backing cell for region-relative (x, y), nil when clipped
func (r Region) at(x, y int) *terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return nil
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return nil
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return nil
	}
	return &r.Cells[idx]
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if c := r.at(x, y); c != nil {
		*c = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}

// SetRune replaces the glyph, colors and attributes are kept
func (r Region) SetRune(x, y int, ch rune) {
	if c := r.at(x, y); c != nil {
		c.Rune = ch
	}
}

// SetForeground sets the foreground, tcell.ColorDefault resets it to zero
func (r Region) SetForeground(x, y int, color tcell.Color) {
	if c := r.at(x, y); c != nil {
		c.Fg, _ = terminal.RGBFromTcell(color)
	}
}

// SetBackground sets the background, tcell.ColorDefault resets it to zero
func (r Region) SetBackground(x, y int, color tcell.Color) {
	if c := r.at(x, y); c != nil {
		c.Bg, _ = terminal.RGBFromTcell(color)
	}
}

// AddAttributes sets attribute bits
func (r Region) AddAttributes(x, y int, mask tcell.AttrMask) {
	if c := r.at(x, y); c != nil {
		c.Attrs |= terminal.AttrFromTcell(mask)
	}
}

// RemoveAttributes clears attribute bits
func (r Region) RemoveAttributes(x, y int, mask tcell.AttrMask) {
	if c := r.at(x, y); c != nil {
		c.Attrs &^= terminal.AttrFromTcell(mask)
	}
}
