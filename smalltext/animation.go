package smalltext

import (
	"time"

	"github.com/lixenwraith/smalltext/clock"
)

// RepeatMode controls what happens after the last step
type RepeatMode uint8

const (
	RepeatOnce     RepeatMode = iota // complete after one pass
	RepeatInfinite                   // wrap to step 0
)

// AdvanceMode controls what moves the animation to its next step
type AdvanceMode uint8

const (
	AdvanceAuto   AdvanceMode = iota // wall-clock time
	AdvanceManual                    // explicit Advance calls only
)

// AnimationState is the lifecycle state reported by Animation and Widget
type AnimationState uint8

const (
	StateIdle AnimationState = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s AnimationState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Step is one timed phase of an animation
type Step struct {
	Duration time.Duration
	Rules    []StepRule
}

// AnimationStyle defines an animation
type AnimationStyle struct {
	Steps   []Step
	Repeat  RepeatMode
	Advance AdvanceMode
}

// clone deep-copies the style and sorts every step's rules
func (s AnimationStyle) clone() AnimationStyle {
	out := s
	out.Steps = make([]Step, len(s.Steps))
	for i, st := range s.Steps {
		rules := make([]StepRule, len(st.Rules))
		copy(rules, st.Rules)
		SortStepRules(rules)
		out.Steps[i] = Step{Duration: st.Duration, Rules: rules}
	}
	return out
}

// Animation is a running instance of an AnimationStyle
// Not safe for concurrent use
type Animation struct {
	style  AnimationStyle
	clock  clock.Clock
	length int

	baseline StyleMap // static resolution at enable time
	running  StyleMap // baseline with deltas of the steps entered so far this cycle
	frame    StyleMap // last frame handed out

	step    int
	elapsed time.Duration // accumulated within the current step
	last    time.Time     // previous time observation
	cycle   time.Duration // sum of positive step durations

	paused bool
	done   bool
}

// NewAnimation starts an animation at step 0 on top of baseline
// Step rules are copied and sorted, baseline is copied
func NewAnimation(style AnimationStyle, baseline StyleMap, length int, c clock.Clock) *Animation {
	if c == nil {
		c = clock.Real()
	}
	a := &Animation{
		style:    style.clone(),
		clock:    c,
		length:   length,
		baseline: baseline.Clone(),
		last:     c.Now(),
	}
	for _, st := range a.style.Steps {
		if st.Duration > 0 {
			a.cycle += st.Duration
		}
	}

	if len(a.style.Steps) == 0 {
		a.done = true
		return a
	}
	a.running = a.baseline.Clone()
	a.enterStep()
	return a
}

// State returns the lifecycle state
func (a *Animation) State() AnimationState {
	switch {
	case a.done:
		return StateCompleted
	case a.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// Step returns the current step index
func (a *Animation) Step() int {
	return a.step
}

// Pause freezes step and elapsed time, no-op if paused or completed
func (a *Animation) Pause() {
	if a.paused || a.done {
		return
	}
	a.observe()
	a.paused = true
}

// Unpause resumes advancement, time spent paused is not counted
func (a *Animation) Unpause() {
	if !a.paused || a.done {
		return
	}
	a.paused = false
	a.last = a.clock.Now()
}

// Advance moves to the next step under AdvanceManual
// No-op under AdvanceAuto, while paused, or after completion
func (a *Animation) Advance() {
	if a.style.Advance != AdvanceManual || a.paused || a.done {
		return
	}
	a.nextStep()
}

// NextFrame returns the frame to show now, false once the animation has ended
// The returned map must not be modified or retained past the current render
func (a *Animation) NextFrame() (StyleMap, bool) {
	if a.done {
		return nil, false
	}
	if a.paused {
		return a.frame, true
	}

	a.observe()
	if a.style.Advance == AdvanceAuto {
		a.settle()
	}
	if a.done {
		return nil, false
	}
	return a.frame, true
}

// observe folds wall-clock time since the last observation into elapsed
func (a *Animation) observe() {
	now := a.clock.Now()
	if d := now.Sub(a.last); d > 0 && a.style.Advance == AdvanceAuto {
		a.elapsed += d
	}
	a.last = now
}

// settle walks forward through every step whose duration has been used up
func (a *Animation) settle() {
	// Whole cycles land on the same step with the same running styles
	if a.style.Repeat == RepeatInfinite && a.cycle > 0 && a.elapsed >= a.cycle {
		a.elapsed %= a.cycle
	}

	// Bounds a pass over steps that consume no time
	idle := 0
	for !a.done && idle <= len(a.style.Steps) {
		d := a.style.Steps[a.step].Duration
		if d <= 0 {
			idle++
			a.nextStep()
			continue
		}
		if a.elapsed < d {
			return
		}
		idle = 0
		a.elapsed -= d
		a.nextStep()
	}
}

// nextStep moves to the next step, wrapping or completing per repeat mode
func (a *Animation) nextStep() {
	a.step++
	if a.step >= len(a.style.Steps) {
		if a.style.Repeat == RepeatOnce {
			a.done = true
			a.step = len(a.style.Steps) - 1
			a.frame = nil
			return
		}
		a.step = 0
		a.running = a.baseline.Clone()
	}
	a.enterStep()
}

// enterStep composes the current step's deltas onto the running styles
func (a *Animation) enterStep() {
	a.running = ResolveDeltas(a.style.Steps[a.step].Rules, a.length, a.running)
	a.frame = a.running
}
