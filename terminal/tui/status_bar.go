package tui

import (
	"slices"

	"github.com/lixenwraith/smalltext/terminal"
)

// BarSection is one label/value segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher survives truncation
}

// BarAlign specifies status bar alignment mode
type BarAlign uint8

const (
	BarAlignRight BarAlign = iota
	BarAlignLeft
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Default " │ "
	SepStyle  Style
	Bg        terminal.RGB
	Align     BarAlign
	Padding   int // Left/right padding, default 1
}

// DefaultBarOpts returns left-aligned options with a dim separator
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  Style{Fg: terminal.RGB{R: 80, G: 80, B: 100}},
		Padding:   1,
		Align:     BarAlignLeft,
	}
}

// StatusBar renders sections on row y, dropping the lowest priority sections until they fit
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H || len(sections) == 0 {
		return
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ' ', terminal.RGB{}, opts.Bg, terminal.AttrNone)
	}

	sepLen := RuneLen(opts.Separator)
	limit := r.W - opts.Padding
	sections = fitSections(sections, sepLen, limit-opts.Padding)

	x := opts.Padding
	if opts.Align == BarAlignRight {
		x = max(limit-barWidth(sections, sepLen), opts.Padding)
	}

	for i, sec := range sections {
		if i > 0 {
			x = r.barText(x, y, limit, opts.Separator, opts.SepStyle, opts.Bg)
		}
		x = r.barText(x, y, limit, sec.Label, sec.LabelStyle, opts.Bg)
		x = r.barText(x, y, limit, sec.Value, sec.ValueStyle, opts.Bg)
	}
}

// barText writes s from x up to limit and returns the next column
func (r Region) barText(x, y, limit int, s string, st Style, bg terminal.RGB) int {
	for _, ch := range s {
		if x >= limit {
			break
		}
		r.Cell(x, y, ch, st.Fg, bg, st.Attr)
		x++
	}
	return x
}

func barWidth(sections []BarSection, sepLen int) int {
	total := 0
	for i, sec := range sections {
		if i > 0 {
			total += sepLen
		}
		total += RuneLen(sec.Label) + RuneLen(sec.Value)
	}
	return total
}

// fitSections removes lowest priority sections until the bar fits, the first of equal priorities goes first
func fitSections(sections []BarSection, sepLen, avail int) []BarSection {
	secs := slices.Clone(sections)
	for len(secs) > 1 && barWidth(secs, sepLen) > avail {
		low := 0
		for i, sec := range secs {
			if sec.Priority < secs[low].Priority {
				low = i
			}
		}
		secs = slices.Delete(secs, low, low+1)
	}
	return secs
}
