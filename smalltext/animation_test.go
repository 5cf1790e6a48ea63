package smalltext

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/smalltext/clock"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fgStep(d time.Duration, c tcell.Color) Step {
	return Step{
		Duration: d,
		Rules:    []StepRule{{Target: Untouched(), Delta: StyleDelta{Fg: c}}},
	}
}

func TestAnimationOnceCompletes(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{fgStep(100*time.Millisecond, tcell.ColorRed)},
	}, StyleMap{}, 2, c)

	c.Advance(50 * time.Millisecond)
	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, StyleMap{0: {Fg: tcell.ColorRed}, 1: {Fg: tcell.ColorRed}}, frame)
	assert.Equal(t, StateRunning, a.State())

	c.Advance(50 * time.Millisecond)
	_, ok = a.NextFrame()
	assert.False(t, ok)
	assert.Equal(t, StateCompleted, a.State())

	_, ok = a.NextFrame()
	assert.False(t, ok, "completed animation stays completed")
}

func TestAnimationStepsComposeOntoBaseline(t *testing.T) {
	c := clock.Fake(epoch)
	baseline := StyleMap{0: {Bg: tcell.ColorBlack}, 1: {Bg: tcell.ColorBlack}}
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			{Duration: 10 * time.Millisecond, Rules: []StepRule{
				{Target: Untouched(), Delta: StyleDelta{Add: tcell.AttrBold}},
				{Target: Single(0), Delta: StyleDelta{Fg: tcell.ColorRed}},
			}},
			{Duration: 10 * time.Millisecond, Rules: []StepRule{
				{Target: Single(1), Delta: StyleDelta{ClearBg: true}},
			}},
		},
		Repeat: RepeatOnce,
	}, baseline, 2, c)

	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, StyleMap{
		0: {Bg: tcell.ColorBlack, Fg: tcell.ColorRed},
		1: {Bg: tcell.ColorBlack, Attrs: tcell.AttrBold},
	}, frame)

	c.Advance(10 * time.Millisecond)
	second, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, StyleMap{
		0: {Bg: tcell.ColorBlack, Fg: tcell.ColorRed},
		1: {Attrs: tcell.AttrBold},
	}, second)

	// Earlier frames are not rewritten by later steps
	assert.Equal(t, tcell.ColorBlack, frame[1].Bg)
	assert.Equal(t, StyleMap{0: {Bg: tcell.ColorBlack}, 1: {Bg: tcell.ColorBlack}}, baseline)
}

func TestAnimationInfiniteWrapsFromBaseline(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			{Duration: 10 * time.Millisecond, Rules: []StepRule{
				{Target: Single(0), Delta: StyleDelta{Add: tcell.AttrBold}},
			}},
			{Duration: 10 * time.Millisecond, Rules: []StepRule{
				{Target: Single(0), Delta: StyleDelta{Fg: tcell.ColorRed}},
			}},
		},
		Repeat: RepeatInfinite,
	}, StyleMap{}, 1, c)

	c.Advance(10 * time.Millisecond)
	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, Style{Fg: tcell.ColorRed, Attrs: tcell.AttrBold}, frame[0])

	c.Advance(10 * time.Millisecond)
	frame, ok = a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 0, a.Step())
	assert.Equal(t, Style{Attrs: tcell.AttrBold}, frame[0], "wrap restarts from the baseline")
}

func TestAnimationSkipsStepsWhenCallerFallsBehind(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			fgStep(10*time.Millisecond, tcell.ColorRed),
			fgStep(10*time.Millisecond, tcell.ColorGreen),
			fgStep(10*time.Millisecond, tcell.ColorBlue),
		},
		Repeat: RepeatInfinite,
	}, StyleMap{}, 1, c)

	c.Advance(25 * time.Millisecond)
	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 2, a.Step())
	assert.Equal(t, tcell.ColorBlue, frame[0].Fg)

	// Many whole cycles later the position within the cycle is kept
	c.Advance(30*time.Millisecond*1000 + 10*time.Millisecond)
	frame, ok = a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 0, a.Step())
	assert.Equal(t, tcell.ColorRed, frame[0].Fg)
}

func TestAnimationOnceCompletesAcrossSkippedSteps(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			fgStep(10*time.Millisecond, tcell.ColorRed),
			fgStep(10*time.Millisecond, tcell.ColorGreen),
		},
	}, StyleMap{}, 1, c)

	c.Advance(time.Second)
	_, ok := a.NextFrame()
	assert.False(t, ok)
}

func TestAnimationDegenerateStepsAdvanceInSameTick(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			fgStep(0, tcell.ColorRed),
			fgStep(-time.Second, tcell.ColorGreen),
			fgStep(50*time.Millisecond, tcell.ColorBlue),
		},
	}, StyleMap{}, 1, c)

	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 2, a.Step())
	assert.Equal(t, tcell.ColorBlue, frame[0].Fg)
}

func TestAnimationAllDegenerateInfiniteDoesNotHang(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps:  []Step{fgStep(0, tcell.ColorRed), fgStep(0, tcell.ColorGreen)},
		Repeat: RepeatInfinite,
	}, StyleMap{}, 1, c)

	_, ok := a.NextFrame()
	assert.True(t, ok)

	once := NewAnimation(AnimationStyle{
		Steps: []Step{fgStep(0, tcell.ColorRed)},
	}, StyleMap{}, 1, c)
	_, ok = once.NextFrame()
	assert.False(t, ok)
}

func TestAnimationWithoutStepsIsCompleted(t *testing.T) {
	a := NewAnimation(AnimationStyle{}, StyleMap{0: whiteOnBlack}, 1, clock.Fake(epoch))

	assert.Equal(t, StateCompleted, a.State())
	_, ok := a.NextFrame()
	assert.False(t, ok)
}

func TestAnimationPauseExcludesPausedTime(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{fgStep(100*time.Millisecond, tcell.ColorRed)},
	}, StyleMap{}, 1, c)

	c.Advance(60 * time.Millisecond)
	a.Pause()
	assert.Equal(t, StatePaused, a.State())
	a.Pause()
	assert.Equal(t, StatePaused, a.State())

	c.Advance(time.Hour)
	frame, ok := a.NextFrame()
	require.True(t, ok, "paused animation keeps returning its frame")
	assert.Equal(t, tcell.ColorRed, frame[0].Fg)

	a.Unpause()
	assert.Equal(t, StateRunning, a.State())

	c.Advance(30 * time.Millisecond)
	_, ok = a.NextFrame()
	assert.True(t, ok, "60ms before pause + 30ms after is still within the step")

	c.Advance(10 * time.Millisecond)
	_, ok = a.NextFrame()
	assert.False(t, ok)
}

func TestAnimationManualAdvance(t *testing.T) {
	c := clock.Fake(epoch)
	a := NewAnimation(AnimationStyle{
		Steps: []Step{
			fgStep(time.Millisecond, tcell.ColorRed),
			fgStep(time.Millisecond, tcell.ColorGreen),
		},
		Advance: AdvanceManual,
	}, StyleMap{}, 1, c)

	c.Advance(time.Second)
	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 0, a.Step(), "time alone does not advance a manual animation")
	assert.Equal(t, tcell.ColorRed, frame[0].Fg)

	a.Pause()
	a.Advance()
	assert.Equal(t, 0, a.Step(), "advance is ignored while paused")
	a.Unpause()

	a.Advance()
	frame, ok = a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, tcell.ColorGreen, frame[0].Fg)

	a.Advance()
	_, ok = a.NextFrame()
	assert.False(t, ok)
	assert.Equal(t, StateCompleted, a.State())
}

func TestAnimationManualInfiniteWraps(t *testing.T) {
	a := NewAnimation(AnimationStyle{
		Steps:   []Step{fgStep(0, tcell.ColorRed), fgStep(0, tcell.ColorGreen)},
		Repeat:  RepeatInfinite,
		Advance: AdvanceManual,
	}, StyleMap{}, 1, clock.Fake(epoch))

	a.Advance()
	a.Advance()
	frame, ok := a.NextFrame()
	require.True(t, ok)
	assert.Equal(t, 0, a.Step())
	assert.Equal(t, tcell.ColorRed, frame[0].Fg)
}

func TestAnimationAdvanceIgnoredInAutoMode(t *testing.T) {
	a := NewAnimation(AnimationStyle{
		Steps: []Step{fgStep(time.Second, tcell.ColorRed), fgStep(time.Second, tcell.ColorGreen)},
	}, StyleMap{}, 1, clock.Fake(epoch))

	a.Advance()
	assert.Equal(t, 0, a.Step())
}

func TestAnimationStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "completed", StateCompleted.String())
}
