package smalltext

import "github.com/gdamore/tcell/v2"

// AttrAll is every text attribute a Style can add or remove
const AttrAll = tcell.AttrBold | tcell.AttrBlink | tcell.AttrReverse | tcell.AttrUnderline |
	tcell.AttrDim | tcell.AttrItalic | tcell.AttrStrikeThrough

// Style is the resolved look of one column
// tcell.ColorDefault leaves a color unset, Attrs are added and NoAttrs removed on draw
// The zero value means "no override"
type Style struct {
	Fg      tcell.Color
	Bg      tcell.Color
	Attrs   tcell.AttrMask
	NoAttrs tcell.AttrMask
}

// IsZero returns true if the style overrides nothing
func (s Style) IsZero() bool {
	return s == Style{}
}

// Rule pairs a target with the style written to each selected column
type Rule struct {
	Target Target
	Style  Style
}

// StyleDelta describes how an animation step changes a column's running style
// Unset fields leave the previous value untouched
type StyleDelta struct {
	Fg tcell.Color // ColorDefault keeps the current foreground
	Bg tcell.Color // ColorDefault keeps the current background

	// ClearFg/ClearBg reset the color to "no override"
	ClearFg bool
	ClearBg bool

	Add    tcell.AttrMask
	Remove tcell.AttrMask

	// RemoveAll removes every attribute before Remove/Add are applied
	RemoveAll bool
	// ClearAttrs drops any attribute override, added or removed
	ClearAttrs bool
}

// Apply returns s with the delta composed on top
func (d StyleDelta) Apply(s Style) Style {
	if d.ClearFg {
		s.Fg = tcell.ColorDefault
	}
	if d.ClearBg {
		s.Bg = tcell.ColorDefault
	}
	if d.ClearAttrs {
		s.Attrs = tcell.AttrNone
		s.NoAttrs = tcell.AttrNone
	}
	if d.RemoveAll {
		s.Attrs = tcell.AttrNone
		s.NoAttrs = AttrAll
	}
	if d.Remove != tcell.AttrNone {
		s.Attrs &^= d.Remove
		s.NoAttrs |= d.Remove
	}
	if d.Add != tcell.AttrNone {
		s.Attrs |= d.Add
		s.NoAttrs &^= d.Add
	}
	if d.Fg != tcell.ColorDefault {
		s.Fg = d.Fg
	}
	if d.Bg != tcell.ColorDefault {
		s.Bg = d.Bg
	}
	return s
}

// StepRule pairs a target with the delta applied to each selected column during a step
type StepRule struct {
	Target Target
	Delta  StyleDelta
}

// StyleMap maps a logical column to its style, absent columns have no override
type StyleMap map[int]Style

// Clone returns an independent copy
func (m StyleMap) Clone() StyleMap {
	c := make(StyleMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
