package smalltext

import "github.com/gdamore/tcell/v2"

// Surface is the external drawing target addressed by physical (x, y)
// The widget only writes, it never reads surface state
type Surface interface {
	SetRune(x, y int, r rune)
	SetForeground(x, y int, c tcell.Color)
	SetBackground(x, y int, c tcell.Color)
	AddAttributes(x, y int, a tcell.AttrMask)
	RemoveAttributes(x, y int, a tcell.AttrMask)
}

// Rect is the screen area of one draw call
type Rect struct {
	X, Y          int
	Width, Height int
}

// Draw writes r and the overrides of s at (x, y)
// Unset fields of s produce no writes, so the surface keeps its own defaults
func Draw(surf Surface, x, y int, r rune, s Style) {
	surf.SetRune(x, y, r)
	if s.Bg != tcell.ColorDefault {
		surf.SetBackground(x, y, s.Bg)
	}
	if s.Fg != tcell.ColorDefault {
		surf.SetForeground(x, y, s.Fg)
	}
	if s.NoAttrs != tcell.AttrNone {
		surf.RemoveAttributes(x, y, s.NoAttrs)
	}
	if s.Attrs != tcell.AttrNone {
		surf.AddAttributes(x, y, s.Attrs)
	}
}
