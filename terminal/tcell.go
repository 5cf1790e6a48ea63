package terminal

import "github.com/gdamore/tcell/v2"

// attrPairs maps cell attributes to their tcell equivalents
var attrPairs = [...]struct {
	attr Attr
	mask tcell.AttrMask
}{
	{AttrBold, tcell.AttrBold},
	{AttrDim, tcell.AttrDim},
	{AttrItalic, tcell.AttrItalic},
	{AttrUnderline, tcell.AttrUnderline},
	{AttrBlink, tcell.AttrBlink},
	{AttrReverse, tcell.AttrReverse},
	{AttrStrikeThrough, tcell.AttrStrikeThrough},
}

// AttrFromTcell converts a tcell attribute mask, unknown bits are dropped
func AttrFromTcell(mask tcell.AttrMask) Attr {
	var a Attr
	for _, p := range attrPairs {
		if mask&p.mask != 0 {
			a |= p.attr
		}
	}
	return a
}

// Tcell converts the attributes to a tcell mask
func (a Attr) Tcell() tcell.AttrMask {
	mask := tcell.AttrNone
	for _, p := range attrPairs {
		if a&p.attr != 0 {
			mask |= p.mask
		}
	}
	return mask
}

// RGBFromTcell resolves a tcell color to RGB
// Returns false for tcell.ColorDefault and other colors without an RGB value
func RGBFromTcell(c tcell.Color) (RGB, bool) {
	if c == tcell.ColorDefault {
		return RGB{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGB{}, false
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// Tcell converts the color to a tcell RGB color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
