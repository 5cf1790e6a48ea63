package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var attrNames = map[string]tcell.AttrMask{
	"bold":          tcell.AttrBold,
	"dim":           tcell.AttrDim,
	"italic":        tcell.AttrItalic,
	"underline":     tcell.AttrUnderline,
	"blink":         tcell.AttrBlink,
	"reverse":       tcell.AttrReverse,
	"strikethrough": tcell.AttrStrikeThrough,
}

// ParseColor accepts tcell color names and #rrggbb
// Empty and "default" leave the color unset
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" || name == "reset" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// ParseAttrs ORs the named attributes into a mask
func ParseAttrs(names []string) (tcell.AttrMask, error) {
	var mask tcell.AttrMask
	for _, n := range names {
		a, ok := attrNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("unknown attribute %q", n)
		}
		mask |= a
	}
	return mask, nil
}
