package saturate

import (
	"time"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/heuristic"
	"github.com/xDarkicex/atp/infer"
)

// Run saturates the given input clause set (§4.6). dialect selects which
// row of the §6 SZS table an outcome maps to. Callers are responsible
// for having already clausified FOF input (see package tptp) and for
// negating the conjecture before calling Run — Run only ever sees CNF.
func (e *Engine) Run(input []*clause.Clause, dialect core.Dialect) *Result {
	start := time.Now()
	stats := Stats{}

	for _, c := range input {
		e.tagInput(c)
	}

	if e.Config.UseEqualityAxioms && infer.HasEquality(input) {
		sig := infer.CollectSignature(input)
		axioms := infer.EqualityAxioms(sig, e.counter)
		for _, ax := range axioms {
			e.tagInput(ax)
		}
		input = append(append([]*clause.Clause{}, input...), axioms...)
	}

	for _, c := range input {
		e.admit(c)
		stats.Generated++
	}

	for {
		stats.Iterations++

		if e.budgetExceeded(start) {
			return &Result{Status: core.StatusGaveUp, Stats: finish(stats, start)}
		}

		given, ok := e.clauses.PickGiven()
		if !ok {
			return &Result{
				Status:    core.OutcomeFor(dialect, false, false),
				Saturated: e.clauses.Processed,
				Stats:     finish(stats, start),
			}
		}

		if e.clauses.ForwardSubsumedByProcessed(given) {
			stats.Discarded++
			continue
		}

		e.clauses.MoveToProcessed(given)
		e.selectLiterals(given)
		e.Logger.Debug("given clause", logField("clause", given)...)

		for _, f := range infer.Factors(given, e.counter) {
			f.Clause.SetOfSupport = given.SetOfSupport
			if refuted, result := e.process(f.Clause, given, nil, "factoring", dialect, &stats, start); refuted {
				return result
			}
		}

		for _, other := range append([]*clause.Clause{}, e.clauses.Processed...) {
			if other == given {
				continue
			}
			if e.Config.UseSetOfSupport && !given.SetOfSupport && !other.SetOfSupport {
				continue
			}
			for _, r := range infer.Resolve(given, other, e.counter) {
				r.Clause.SetOfSupport = given.SetOfSupport || other.SetOfSupport
				if refuted, result := e.process(r.Clause, given, other, "resolution", dialect, &stats, start); refuted {
					return result
				}
			}
		}
	}
}

// process runs the §4.4 redundancy pipeline on a freshly generated
// clause and reports whether it turned out to be the empty clause (a
// refutation), in which case it builds and returns the final Result.
func (e *Engine) process(n *clause.Clause, left, right *clause.Clause, rule string, dialect core.Dialect, stats *Stats, start time.Time) (bool, *Result) {
	n.Type = clause.TypeDerived
	n.Inference = rule
	n.Parents = parentsOf(left, right)
	e.assignID(n)

	ok, refutation := e.clauses.Submit(n)
	if !ok {
		stats.Discarded++
		e.Logger.Trace("discarded clause", logField("clause", n)...)
		return false, nil
	}
	stats.Generated++
	e.Logger.Trace("admitted clause", logField("clause", n)...)

	if refutation {
		proof := ExtractProof(n, e.allDerived())
		return true, &Result{
			Status:     core.OutcomeFor(dialect, true, false),
			Refutation: proof,
			Stats:      finish(*stats, start),
		}
	}
	return false, nil
}

func parentsOf(left, right *clause.Clause) []clause.Parent {
	var out []clause.Parent
	if left != nil {
		out = append(out, clause.Parent{ClauseID: left.ID})
	}
	if right != nil {
		out = append(out, clause.Parent{ClauseID: right.ID})
	}
	return out
}

// tagInput sets the "input" inference annotation (if unset) and marks
// SetOfSupport for negated-conjecture clauses. ID assignment and literal
// selection happen later, in admit.
func (e *Engine) tagInput(c *clause.Clause) {
	if c.Inference == "" {
		c.Inference = "input"
	}
	if c.Type == clause.TypeNegatedConjecture {
		c.SetOfSupport = true
	}
}

func (e *Engine) admit(c *clause.Clause) {
	e.assignID(c)
	e.selectLiterals(c)
	e.clauses.Submit(c)
}

// selectLiterals applies whichever of the §4.5/§6 literal-selection
// axes is configured: -p (positive) and -n (negative) are mutually
// exclusive per the §9 Open Question decision, so PositiveSelection
// takes priority when both happen to be set.
func (e *Engine) selectLiterals(c *clause.Clause) {
	if e.Config.PositiveSelection {
		heuristic.SelectPositive(c)
		return
	}
	heuristic.Select(c, e.Config.Selection)
}

func (e *Engine) assignID(c *clause.Clause) {
	if c.ID == 0 {
		c.ID = e.freshID()
	}
	e.registry[c.ID] = c
}

// allDerived is a placeholder hook used by ExtractProof to resolve
// parent clause IDs back to clause values; Engine keeps every clause it
// has ever admitted reachable through the clause set and the registry
// built up in assignID.
func (e *Engine) allDerived() map[int]*clause.Clause {
	return e.registry
}

func (e *Engine) budgetExceeded(start time.Time) bool {
	if e.Config.MaxWallTime > 0 && time.Since(start) > e.Config.MaxWallTime {
		return true
	}
	if e.Config.MaxClauses > 0 && e.nextClause > e.Config.MaxClauses {
		return true
	}
	return false
}

func finish(s Stats, start time.Time) Stats {
	s.Elapsed = time.Since(start)
	return s
}
