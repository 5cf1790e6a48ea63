package tui

import (
	"github.com/lixenwraith/smalltext/terminal"
)

// Style bundles foreground, background, and attributes of a cell
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s == Style{}
}

// StyleAt returns the style and glyph stored at region-relative (x, y)
// ok is false when the position is clipped
func (r Region) StyleAt(x, y int) (ch rune, s Style, ok bool) {
	c := r.at(x, y)
	if c == nil {
		return 0, Style{}, false
	}
	return c.Rune, Style{Fg: c.Fg, Bg: c.Bg, Attr: c.Attrs}, true
}
