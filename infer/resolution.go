// Package infer implements the §4.3 inference rules: binary resolution,
// factoring, and equality-axiom synthesis. Each rule is a pure function
// from clauses to a slice of resolvents/factors; none of them touch the
// clause set — that bookkeeping belongs to package saturate.
package infer

import (
	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// Resolvent records a single binary-resolution result together with the
// parent literal positions, so saturate can attach proof annotations.
type Resolvent struct {
	Clause   *clause.Clause
	LeftAt   int
	RightAt  int
}

// Resolve computes every binary resolvent of c and d (§4.3). d is
// freshly renamed against counter first so the two clauses never share
// a variable, per the clause-local variable invariant of §3. The
// selection restriction is enforced by using clause.Eligible on both
// sides: if a clause has a selected literal, only selected literals may
// play the role of the resolved-upon literal.
func Resolve(c, d *clause.Clause, counter *term.Counter) []Resolvent {
	renamedD, _ := clause.Rename(d, counter)
	renamedD.Selected = d.Selected // selection is positional, preserved by renaming

	var out []Resolvent
	for _, i := range c.Eligible() {
		li := c.Literals[i]
		for _, j := range renamedD.Eligible() {
			lj := renamedD.Literals[j]
			if li.Positive == lj.Positive || li.Predicate != lj.Predicate {
				continue
			}
			sigma, ok := clause.UnifyLiterals(li, lj)
			if !ok {
				continue
			}
			out = append(out, Resolvent{
				Clause:  buildResolvent(c, i, renamedD, j, sigma),
				LeftAt:  i,
				RightAt: j,
			})
		}
	}
	return out
}

func buildResolvent(c *clause.Clause, ci int, d *clause.Clause, di int, sigma term.Substitution) *clause.Clause {
	lits := make([]clause.Literal, 0, len(c.Literals)+len(d.Literals)-2)
	for i, l := range c.Literals {
		if i == ci {
			continue
		}
		lits = append(lits, applyLit(sigma, l))
	}
	for i, l := range d.Literals {
		if i == di {
			continue
		}
		lits = append(lits, applyLit(sigma, l))
	}
	return clause.New(lits...)
}

func applyLit(sigma term.Substitution, l clause.Literal) clause.Literal {
	args := make([]term.Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = term.Apply(sigma, a)
	}
	return clause.Literal{Positive: l.Positive, Predicate: l.Predicate, Args: args}
}
