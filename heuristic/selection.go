// Package heuristic implements the §4.5 literal-selection and
// clause-evaluation policies as closed variants with string lookup,
// per the design notes, rather than dynamic loading or mutable literal
// flags.
package heuristic

import (
	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
)

// Select computes the selection bitmap for c according to policy and
// writes it into c.Selected, implementing the "selection flag set once
// when the clause enters U" lifecycle rule of §3. For SelectNone it
// clears the map.
func Select(c *clause.Clause, policy core.LiteralSelection) {
	negatives := negativeIndices(c)
	switch policy {
	case core.SelectNone:
		c.Selected = nil
	case core.SelectFirstNegative:
		if len(negatives) > 0 {
			c.Selected = map[int]bool{negatives[0]: true}
		}
	case core.SelectSmallestNegative:
		if idx, ok := extremeByWeight(c, negatives, true); ok {
			c.Selected = map[int]bool{idx: true}
		}
	case core.SelectLargestNegative:
		if idx, ok := extremeByWeight(c, negatives, false); ok {
			c.Selected = map[int]bool{idx: true}
		}
	}
}

// SelectPositive marks the first positive literal selected, the -p
// policy of §6. It is mutually exclusive with the negative-selection
// policies (§9 Open Question, resolved in favor of "pick one policy
// per run"): callers choose between this and Select, never both.
func SelectPositive(c *clause.Clause) {
	for i, l := range c.Literals {
		if l.Positive {
			c.Selected = map[int]bool{i: true}
			return
		}
	}
	c.Selected = nil
}

func negativeIndices(c *clause.Clause) []int {
	var out []int
	for i, l := range c.Literals {
		if !l.Positive {
			out = append(out, i)
		}
	}
	return out
}

// extremeByWeight picks the smallest (or, if smallest is false, the
// largest) negative literal by clause.DefaultWeight, breaking ties by
// earliest index for determinism (§8).
func extremeByWeight(c *clause.Clause, negatives []int, smallest bool) (int, bool) {
	if len(negatives) == 0 {
		return 0, false
	}
	best := negatives[0]
	bestW := clause.DefaultWeight(c.Literals[best])
	for _, i := range negatives[1:] {
		w := clause.DefaultWeight(c.Literals[i])
		if (smallest && w < bestW) || (!smallest && w > bestW) {
			best, bestW = i, w
		}
	}
	return best, true
}
