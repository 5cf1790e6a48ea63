package surface

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

type lineCell struct {
	r     rune
	fg    tcell.Color
	bg    tcell.Color
	attrs tcell.AttrMask
}

// Line is an in-memory single-row surface rendered to a string through lipgloss
// Writes outside [0, width) on row Row are dropped
type Line struct {
	Row int

	cells    []lineCell
	renderer *lipgloss.Renderer
}

// NewLine creates a blank line of width cells rendered with the given color profile
func NewLine(width int, profile termenv.Profile) *Line {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	cells := make([]lineCell, max(width, 0))
	for i := range cells {
		cells[i].r = ' '
	}
	return &Line{cells: cells, renderer: r}
}

// Width returns the number of cells
func (l *Line) Width() int { return len(l.cells) }

func (l *Line) at(x, y int) *lineCell {
	if y != l.Row || x < 0 || x >= len(l.cells) {
		return nil
	}
	return &l.cells[x]
}

func (l *Line) SetRune(x, y int, r rune) {
	if c := l.at(x, y); c != nil {
		c.r = r
	}
}

func (l *Line) SetForeground(x, y int, color tcell.Color) {
	if c := l.at(x, y); c != nil {
		c.fg = color
	}
}

func (l *Line) SetBackground(x, y int, color tcell.Color) {
	if c := l.at(x, y); c != nil {
		c.bg = color
	}
}

func (l *Line) AddAttributes(x, y int, a tcell.AttrMask) {
	if c := l.at(x, y); c != nil {
		c.attrs |= a
	}
}

func (l *Line) RemoveAttributes(x, y int, a tcell.AttrMask) {
	if c := l.at(x, y); c != nil {
		c.attrs &^= a
	}
}

// Plain returns the glyphs without styling
func (l *Line) Plain() string {
	var b strings.Builder
	for _, c := range l.cells {
		b.WriteRune(c.r)
	}
	return b.String()
}

// String renders the line, consecutive cells with equal styling share one styled run
func (l *Line) String() string {
	var b strings.Builder
	var run strings.Builder

	for i := 0; i < len(l.cells); {
		head := l.cells[i]
		run.Reset()
		for ; i < len(l.cells) && sameStyle(l.cells[i], head); i++ {
			run.WriteRune(l.cells[i].r)
		}
		b.WriteString(l.style(head).Render(run.String()))
	}
	return b.String()
}

func sameStyle(a, b lineCell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.attrs == b.attrs
}

// style maps a cell's colors and attributes to a lipgloss style
func (l *Line) style(c lineCell) lipgloss.Style {
	st := l.renderer.NewStyle()
	if c.fg.Valid() {
		st = st.Foreground(lipglossColor(c.fg))
	}
	if c.bg.Valid() {
		st = st.Background(lipglossColor(c.bg))
	}
	if c.attrs&tcell.AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.attrs&tcell.AttrDim != 0 {
		st = st.Faint(true)
	}
	if c.attrs&tcell.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.attrs&tcell.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.attrs&tcell.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.attrs&tcell.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if c.attrs&tcell.AttrStrikeThrough != 0 {
		st = st.Strikethrough(true)
	}
	return st
}

// lipglossColor keeps palette colors as ANSI indices and RGB colors as hex
func lipglossColor(c tcell.Color) lipgloss.Color {
	if c.IsRGB() {
		return lipgloss.Color(c.CSS())
	}
	return lipgloss.Color(strconv.Itoa(int(c - tcell.ColorValid)))
}
