package smalltext

import (
	"cmp"
	"slices"
)

// SortRules stable-sorts rules by descending target priority
func SortRules(rules []Rule) {
	slices.SortStableFunc(rules, func(a, b Rule) int {
		return cmp.Compare(b.Target.Priority(), a.Target.Priority())
	})
}

// SortStepRules stable-sorts step rules by descending target priority
func SortStepRules(rules []StepRule) {
	slices.SortStableFunc(rules, func(a, b StepRule) int {
		return cmp.Compare(b.Target.Priority(), a.Target.Priority())
	})
}

// Resolve computes the static style of every column in [0, length)
// Rules are expected in SortRules order, columns selected by no rule are absent from the result
func Resolve(rules []Rule, length int) StyleMap {
	out := make(StyleMap, length)
	walkClaims(len(rules), length,
		func(i int) Target { return rules[i].Target },
		func(i, col int) { out[col] = rules[i].Style },
	)
	return out
}

// ResolveDeltas composes step rules onto a copy of base
// Rules are expected in SortStepRules order
func ResolveDeltas(rules []StepRule, length int, base StyleMap) StyleMap {
	out := base.Clone()
	walkClaims(len(rules), length,
		func(i int) Target { return rules[i].Target },
		func(i, col int) { out[col] = rules[i].Delta.Apply(out[col]) },
	)
	return out
}

// walkClaims visits every (rule, column) pair that survives precedence
// A column claimed by a higher priority class is never visited again for a lower class,
// rules of the same class all visit it in order. Untouched rules run last over unclaimed columns
func walkClaims(n, length int, target func(i int) Target, visit func(i, col int)) {
	if length <= 0 {
		return
	}

	// owner holds priority+1 of the claiming class, 0 = unclaimed
	owner := make([]int, length)
	var untouched []int

	for i := 0; i < n; i++ {
		t := target(i)
		if t.Kind == TargetUntouched {
			untouched = append(untouched, i)
			continue
		}
		p := t.Priority() + 1
		t.Columns(length, func(col int) {
			if owner[col] <= p {
				owner[col] = p
				visit(i, col)
			}
		})
	}

	for _, i := range untouched {
		for col, o := range owner {
			if o == 0 {
				visit(i, col)
			}
		}
	}
}
