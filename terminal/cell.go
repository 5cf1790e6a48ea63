package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrDim           Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrBlink         Attr = 1 << 4
	AttrReverse       Attr = 1 << 5
	AttrStrikeThrough Attr = 1 << 6
)

// AttrStyle masks every style bit
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrStrikeThrough

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Cell represents a single terminal cell
// Zero Fg/Bg are treated as the terminal default by consumers
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}
