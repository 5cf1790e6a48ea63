package smalltext

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestStyleDeltaApply(t *testing.T) {
	base := Style{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, Attrs: tcell.AttrUnderline}

	tests := []struct {
		name  string
		delta StyleDelta
		want  Style
	}{
		{"Empty delta keeps style", StyleDelta{}, base},
		{
			"Update colors",
			StyleDelta{Fg: tcell.ColorRed, Bg: tcell.ColorBlue},
			Style{Fg: tcell.ColorRed, Bg: tcell.ColorBlue, Attrs: tcell.AttrUnderline},
		},
		{
			"Clear foreground",
			StyleDelta{ClearFg: true},
			Style{Bg: tcell.ColorBlack, Attrs: tcell.AttrUnderline},
		},
		{
			"Clear background then set",
			StyleDelta{ClearBg: true, Bg: tcell.ColorGreen},
			Style{Fg: tcell.ColorWhite, Bg: tcell.ColorGreen, Attrs: tcell.AttrUnderline},
		},
		{
			"Add attribute",
			StyleDelta{Add: tcell.AttrBold},
			Style{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, Attrs: tcell.AttrUnderline | tcell.AttrBold},
		},
		{
			"Remove attribute",
			StyleDelta{Remove: tcell.AttrUnderline},
			Style{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, NoAttrs: tcell.AttrUnderline},
		},
		{
			"Remove all then add",
			StyleDelta{RemoveAll: true, Add: tcell.AttrBold},
			Style{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, Attrs: tcell.AttrBold, NoAttrs: AttrAll &^ tcell.AttrBold},
		},
		{
			"Clear attributes",
			StyleDelta{ClearAttrs: true},
			Style{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.delta.Apply(base))
		})
	}
}

func TestStyleDeltaAddUndoesRemove(t *testing.T) {
	s := StyleDelta{Remove: tcell.AttrBold}.Apply(Style{})
	s = StyleDelta{Add: tcell.AttrBold}.Apply(s)

	assert.Equal(t, Style{Attrs: tcell.AttrBold}, s)
}

func TestStyleIsZero(t *testing.T) {
	assert.True(t, Style{}.IsZero())
	assert.False(t, Style{NoAttrs: tcell.AttrDim}.IsZero())
}

func TestStyleMapClone(t *testing.T) {
	m := StyleMap{0: whiteOnBlack}
	c := m.Clone()
	c[0] = blackOnWhite
	c[1] = blackOnWhite

	assert.Equal(t, StyleMap{0: whiteOnBlack}, m)
	assert.Empty(t, StyleMap(nil).Clone())
}
