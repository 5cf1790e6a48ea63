// Package smalltext renders a single line of text with per-column styling and optional animation.
//
// Styling is declarative: each Rule pairs a Target (which columns) with a Style (what to apply).
// Rules are sorted once by target specificity, so more specific selectors win over broader ones
// regardless of the order they were supplied in:
//
//	Single > Range > Every > AllExceptEvery > Untouched
//
// Untouched resolves against whatever columns the other rules left unclaimed.
//
// An animation is a keyed sequence of timed steps. Each step carries StepRules whose
// StyleDeltas compose onto the running per-column style, starting from the static resolution.
// Steps advance by wall-clock time (AdvanceAuto) or on explicit Advance calls (AdvanceManual).
//
// Usage pattern:
//
//	w := smalltext.New(smalltext.TextStyle{
//	    Text: "Hello",
//	    Rules: []smalltext.Rule{
//	        {Target: smalltext.Single(0), Style: smalltext.Style{Fg: tcell.ColorRed}},
//	        {Target: smalltext.Untouched(), Style: smalltext.Style{Fg: tcell.ColorWhite}},
//	    },
//	    Animations: map[string]smalltext.AnimationStyle{"blink": blink},
//	})
//
//	w.EnableAnimation("blink")
//	for range ticker.C {
//	    w.Render(smalltext.Rect{X: 0, Y: 0, Width: width, Height: 1}, surface)
//	}
//
// The widget is not safe for concurrent use, callers own the render loop.
package smalltext
