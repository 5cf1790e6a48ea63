package smalltext

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/smalltext/clock"
)

// TextStyle is the construction input of a Widget
type TextStyle struct {
	Text       string
	Rules      []Rule
	Animations map[string]AnimationStyle
}

// Option configures a Widget
type Option func(*Widget)

// WithClock sets the time source of animations, defaults to clock.Real()
func WithClock(c clock.Clock) Option {
	return func(w *Widget) { w.clock = c }
}

// WithLogger sets the lifecycle logger, defaults to a no-op logger
func WithLogger(l zerolog.Logger) Option {
	return func(w *Widget) { w.logger = l }
}

// Widget displays one line of styled, optionally animated text
type Widget struct {
	text   []rune
	length int

	rules      []Rule
	static     StyleMap
	animations map[string]AnimationStyle

	active    *Animation
	activeKey string

	clock  clock.Clock
	logger zerolog.Logger
}

// New builds a widget, rules are sorted by priority and the static resolution is computed once
func New(style TextStyle, opts ...Option) *Widget {
	w := &Widget{
		text:       []rune(style.Text),
		rules:      slices.Clone(style.Rules),
		animations: make(map[string]AnimationStyle, len(style.Animations)),
		clock:      clock.Real(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.length = len(w.text)

	SortRules(w.rules)
	w.static = Resolve(w.rules, w.length)

	for key, anim := range style.Animations {
		w.animations[key] = anim.clone()
	}
	return w
}

// Text returns the displayed text
func (w *Widget) Text() string { return string(w.text) }

// Len returns the number of columns of the text
func (w *Widget) Len() int { return w.length }

// Rules returns the static rules in priority order
func (w *Widget) Rules() []Rule { return slices.Clone(w.rules) }

// Resolve returns a copy of the static per-column styles
func (w *Widget) Resolve() StyleMap { return w.static.Clone() }

// AnimationKeys returns the known animation keys, sorted
func (w *Widget) AnimationKeys() []string {
	return slices.Sorted(maps.Keys(w.animations))
}

// ActiveAnimation returns the key of the active animation
func (w *Widget) ActiveAnimation() (string, bool) {
	if w.active == nil {
		return "", false
	}
	return w.activeKey, true
}

// AnimationState returns StateIdle when no animation is active
func (w *Widget) AnimationState() AnimationState {
	if w.active == nil {
		return StateIdle
	}
	return w.active.State()
}

// EnableAnimation replaces the active animation with a fresh instance of key
// Unknown keys leave the widget unchanged
func (w *Widget) EnableAnimation(key string) {
	style, ok := w.animations[key]
	if !ok {
		w.logger.Debug().Str("animation", key).Msg("Unknown animation key ignored")
		return
	}
	w.active = NewAnimation(style, w.static, w.length, w.clock)
	w.activeKey = key
	w.logger.Debug().
		Str("animation", key).
		Int("steps", len(style.Steps)).
		Msg("Animation enabled")
}

// DisableAnimation drops the active animation, if any
func (w *Widget) DisableAnimation() {
	if w.active == nil {
		return
	}
	w.logger.Debug().Str("animation", w.activeKey).Msg("Animation disabled")
	w.active = nil
	w.activeKey = ""
}

// PauseAnimation pauses the active animation, if any
func (w *Widget) PauseAnimation() {
	if w.active != nil {
		w.active.Pause()
	}
}

// UnpauseAnimation resumes the active animation, if any
func (w *Widget) UnpauseAnimation() {
	if w.active != nil {
		w.active.Unpause()
	}
}

// AdvanceAnimation moves a manual animation to its next step
func (w *Widget) AdvanceAnimation() {
	if w.active != nil {
		w.active.Advance()
	}
}

// Render draws the visible prefix of the text into area's first row
// An active animation owns the pass, when it ends the static styles are drawn in the same pass
func (w *Widget) Render(area Rect, surf Surface) {
	visible := max(min(area.Width, w.length), 0)

	styles := w.static
	if w.active != nil {
		if frame, ok := w.active.NextFrame(); ok {
			styles = frame
		} else {
			w.logger.Debug().Str("animation", w.activeKey).Msg("Animation completed")
			w.active = nil
			w.activeKey = ""
		}
	}

	if area.Height <= 0 || surf == nil {
		return
	}
	for col := 0; col < visible; col++ {
		Draw(surf, area.X+col, area.Y, w.text[col], styles[col])
	}
}
