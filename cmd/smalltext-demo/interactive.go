package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"slices"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/smalltext/smalltext"
	"github.com/lixenwraith/smalltext/surface"
	"github.com/lixenwraith/smalltext/terminal"
	"github.com/lixenwraith/smalltext/terminal/tui"
)

const frameInterval = 16 * time.Millisecond

var (
	barBg    = terminal.RGB{R: 24, G: 24, B: 32}
	barLabel = tui.Style{Fg: terminal.RGB{R: 120, G: 120, B: 140}}
	barValue = tui.Style{Fg: terminal.RGB{R: 220, G: 220, B: 230}, Attr: terminal.AttrBold}
	barHelp  = tui.Style{Fg: terminal.RGB{R: 90, G: 90, B: 110}}
)

// demo holds the interactive session state
type demo struct {
	widget  *smalltext.Widget
	keys    []string
	next    int // index of the key Tab enables
	lastKey string
	frame   int
	logger  zerolog.Logger
}

func newDemo(w *smalltext.Widget, logger zerolog.Logger) *demo {
	return &demo{widget: w, keys: w.AnimationKeys(), logger: logger}
}

// enable starts key and moves the Tab cursor past it
func (d *demo) enable(key string) {
	d.widget.EnableAnimation(key)
	d.lastKey = key
	if i := slices.Index(d.keys, key); i >= 0 {
		d.next = i + 1
	}
}

// handleKey applies one key press, false means quit
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if len(d.keys) > 0 {
			d.enable(d.keys[d.next%len(d.keys)])
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'p':
		if d.widget.AnimationState() == smalltext.StatePaused {
			d.widget.UnpauseAnimation()
		} else {
			d.widget.PauseAnimation()
		}
	case 'n':
		d.widget.AdvanceAnimation()
	case 'd':
		d.widget.DisableAnimation()
	case 'r':
		if d.lastKey != "" {
			d.widget.EnableAnimation(d.lastKey)
		}
	}
	return true
}

// draw renders the widget centered on the middle row and the status bar on the last row
func (d *demo) draw(screen tcell.Screen) {
	d.frame++
	screen.Clear()
	width, height := screen.Size()
	surf := surface.NewScreen(screen)

	x := max((width-d.widget.Len())/2, 0)
	d.widget.Render(smalltext.Rect{X: x, Y: height / 2, Width: width - x, Height: 1}, surf)

	if height > 1 {
		cells := make([]terminal.Cell, width)
		bar := tui.NewRegion(cells, width, 0, 0, width, 1)
		bar.StatusBar(0, d.status(), tui.BarOpts{Bg: barBg, Align: tui.BarAlignLeft})
		bar.CopyTo(surf, 0, height-1)
	}
	screen.Show()
}

// status lists the active animation first, help text is dropped first on narrow screens
func (d *demo) status() []tui.BarSection {
	key, ok := d.widget.ActiveAnimation()
	if !ok {
		key = "-"
	}
	return []tui.BarSection{
		{Label: "anim ", Value: tui.Truncate(key, 16), LabelStyle: barLabel, ValueStyle: barValue, Priority: 3},
		{Label: "state ", Value: d.widget.AnimationState().String(), LabelStyle: barLabel, ValueStyle: barValue, Priority: 2},
		{Label: "frame ", Value: strconv.Itoa(d.frame), LabelStyle: barLabel, ValueStyle: barValue, Priority: 1},
		{Label: "tab p n d r q", LabelStyle: barHelp, Priority: 0},
	}
}

// run drives the render loop until a quit key or the screen closes
func (d *demo) run(screen tcell.Screen) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSMALLTEXT-DEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	d.draw(screen)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !d.handleKey(ev) {
					d.logger.Debug().Int("frames", d.frame).Msg("Demo quit")
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			d.draw(screen)
		case <-ticker.C:
			d.draw(screen)
		}
	}
}
