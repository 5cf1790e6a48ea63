package smalltext

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetKind identifies the selector variant of a Target
type TargetKind uint8

const (
	TargetUntouched TargetKind = iota
	TargetAllExceptEvery
	TargetEvery
	TargetRange
	TargetSingle
)

// Target selects the columns a rule applies to
// A and B carry the variant parameters: column for Single, [A, B) for Range, stride for Every/AllExceptEvery
type Target struct {
	Kind TargetKind
	A, B int
}

// Single selects one column
func Single(col int) Target { return Target{Kind: TargetSingle, A: col} }

// Range selects the half-open column range [start, end)
func Range(start, end int) Target { return Target{Kind: TargetRange, A: start, B: end} }

// Every selects columns 0, n, 2n, ...
func Every(n int) Target { return Target{Kind: TargetEvery, A: n} }

// AllExceptEvery selects every column not divisible by n, column 0 is never selected
func AllExceptEvery(n int) Target { return Target{Kind: TargetAllExceptEvery, A: n} }

// Untouched selects columns not claimed by any other rule of the same pass
func Untouched() Target { return Target{Kind: TargetUntouched} }

// Priority orders targets by specificity, higher wins
func (t Target) Priority() int {
	// Kind constants are declared in ascending specificity
	return int(t.Kind)
}

// Columns calls fn for each column in [0, length) the target selects on its own
// Untouched selects nothing here, degenerate parameters select nothing
func (t Target) Columns(length int, fn func(col int)) {
	switch t.Kind {
	case TargetSingle:
		if t.A >= 0 && t.A < length {
			fn(t.A)
		}
	case TargetRange:
		start, end := max(t.A, 0), min(t.B, length)
		for x := start; x < end; x++ {
			fn(x)
		}
	case TargetEvery:
		if t.A <= 0 {
			return
		}
		for x := 0; x < length; x += t.A {
			fn(x)
		}
	case TargetAllExceptEvery:
		if t.A <= 0 {
			return
		}
		for x := 1; x < length; x++ {
			if x%t.A != 0 {
				fn(x)
			}
		}
	case TargetUntouched:
	}
}

// String returns the textual form accepted by ParseTarget
func (t Target) String() string {
	switch t.Kind {
	case TargetSingle:
		return "single:" + strconv.Itoa(t.A)
	case TargetRange:
		return fmt.Sprintf("range:%d-%d", t.A, t.B)
	case TargetEvery:
		return "every:" + strconv.Itoa(t.A)
	case TargetAllExceptEvery:
		return "all_except_every:" + strconv.Itoa(t.A)
	default:
		return "untouched"
	}
}

// ParseTarget parses "single:N", "range:A-B", "every:N", "all_except_every:N" or "untouched"
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	name, arg, hasArg := strings.Cut(s, ":")

	if name == "untouched" {
		if hasArg {
			return Target{}, fmt.Errorf("target %q: untouched takes no argument", s)
		}
		return Untouched(), nil
	}
	if !hasArg {
		return Target{}, fmt.Errorf("target %q: missing argument", s)
	}

	switch name {
	case "single", "every", "all_except_every":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Target{}, fmt.Errorf("target %q: %w", s, err)
		}
		switch name {
		case "single":
			return Single(n), nil
		case "every":
			return Every(n), nil
		default:
			return AllExceptEvery(n), nil
		}
	case "range":
		lo, hi, ok := strings.Cut(arg, "-")
		if !ok {
			return Target{}, fmt.Errorf("target %q: range expects start-end", s)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return Target{}, fmt.Errorf("target %q: %w", s, err)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return Target{}, fmt.Errorf("target %q: %w", s, err)
		}
		return Range(start, end), nil
	}
	return Target{}, fmt.Errorf("target %q: unknown kind %q", s, name)
}
