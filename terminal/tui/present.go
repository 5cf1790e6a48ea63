package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/smalltext/smalltext"
	"github.com/lixenwraith/smalltext/terminal"
)

// CopyTo writes every cell of the region onto surf with the region origin at (x, y)
// Zero colors become tcell.ColorDefault and unset runes become spaces
func (r Region) CopyTo(surf smalltext.Surface, x, y int) {
	for row := 0; row < r.H; row++ {
		for col := 0; col < r.W; col++ {
			c := r.at(col, row)
			if c == nil {
				continue
			}
			sx, sy := x+col, y+row

			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			surf.SetRune(sx, sy, ch)
			surf.SetForeground(sx, sy, cellColor(c.Fg))
			surf.SetBackground(sx, sy, cellColor(c.Bg))
			surf.RemoveAttributes(sx, sy, terminal.AttrStyle.Tcell())
			surf.AddAttributes(sx, sy, c.Attrs.Tcell())
		}
	}
}

func cellColor(c terminal.RGB) tcell.Color {
	if c == (terminal.RGB{}) {
		return tcell.ColorDefault
	}
	return c.Tcell()
}
