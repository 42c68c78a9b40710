package infer

import (
	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// Factor records a single factoring result, naming the two merged
// literal positions for proof annotation.
type Factor struct {
	Clause   *clause.Clause
	KeptAt   int
	MergedAt int
}

// Factors computes every factor of c (§4.3): for L, L' of the same
// polarity and predicate at eligible positions, if sigma =
// unify(atom(L), atom(L')) exists, emit (L ∨ R)σ where R is the rest of
// c with L' dropped. Factoring applies only once, on the given clause
// itself (not across clause pairs), and is subject to the same
// selection restriction as resolution.
func Factors(c *clause.Clause, counter *term.Counter) []Factor {
	eligible := c.Eligible()
	var out []Factor
	for a := 0; a < len(eligible); a++ {
		for b := a + 1; b < len(eligible); b++ {
			i, j := eligible[a], eligible[b]
			li, lj := c.Literals[i], c.Literals[j]
			if li.Positive != lj.Positive || li.Predicate != lj.Predicate {
				continue
			}
			sigma, ok := clause.UnifyLiterals(li, lj)
			if !ok {
				continue
			}
			out = append(out, Factor{
				Clause:   buildFactor(c, i, j, sigma),
				KeptAt:   i,
				MergedAt: j,
			})
		}
	}
	return out
}

func buildFactor(c *clause.Clause, keep, drop int, sigma term.Substitution) *clause.Clause {
	lits := make([]clause.Literal, 0, len(c.Literals)-1)
	for i, l := range c.Literals {
		if i == drop {
			continue
		}
		lits = append(lits, applyLit(sigma, l))
	}
	return clause.New(lits...)
}
