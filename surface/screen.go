// Package surface adapts drawing targets to smalltext.Surface.
package surface

import (
	"github.com/gdamore/tcell/v2"
)

// Screen writes into a tcell.Screen cell by cell
// Each write reads the cell back and replaces only the requested part of its content
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) SetRune(x, y int, r rune) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) SetForeground(x, y int, c tcell.Color) {
	mainc, combc, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, mainc, combc, style.Foreground(c))
}

func (s *Screen) SetBackground(x, y int, c tcell.Color) {
	mainc, combc, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, mainc, combc, style.Background(c))
}

func (s *Screen) AddAttributes(x, y int, a tcell.AttrMask) {
	mainc, combc, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, mainc, combc, withAttrs(style, a, true))
}

func (s *Screen) RemoveAttributes(x, y int, a tcell.AttrMask) {
	mainc, combc, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, mainc, combc, withAttrs(style, a, false))
}

// withAttrs toggles each attribute of mask on the style
func withAttrs(st tcell.Style, mask tcell.AttrMask, on bool) tcell.Style {
	if mask&tcell.AttrBold != 0 {
		st = st.Bold(on)
	}
	if mask&tcell.AttrBlink != 0 {
		st = st.Blink(on)
	}
	if mask&tcell.AttrReverse != 0 {
		st = st.Reverse(on)
	}
	if mask&tcell.AttrUnderline != 0 {
		st = st.Underline(on)
	}
	if mask&tcell.AttrDim != 0 {
		st = st.Dim(on)
	}
	if mask&tcell.AttrItalic != 0 {
		st = st.Italic(on)
	}
	if mask&tcell.AttrStrikeThrough != 0 {
		st = st.StrikeThrough(on)
	}
	return st
}
