// Package saturate implements §4.4's redundancy pipeline and §4.6's
// given-clause main loop: the processed/unprocessed partition, forward
// and backward subsumption, and the Engine that drives saturation to a
// refutation or a fixpoint.
package saturate

import (
	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/heuristic"
)

// ClauseSet holds the two logical sets of §3: Processed (P) and an
// unprocessed picker (U). P is maintained redundancy-minimal: no
// tautologies, no clause subsumed by another member of P.
type ClauseSet struct {
	Processed []*clause.Clause
	picker    heuristic.Picker
	shadowAll shadow

	forwardSubsumption  bool
	backwardSubsumption bool
}

// NewClauseSet builds an empty clause set using the given picker policy
// and subsumption flags (-f/-b of §6).
func NewClauseSet(h core.ClauseHeuristic, forward, backward bool) *ClauseSet {
	return &ClauseSet{
		picker:              heuristic.NewPicker(h),
		forwardSubsumption:  forward,
		backwardSubsumption: backward,
	}
}

// shadow is a minimal iteration surface the subsumption
// checks need beyond what Picker exposes; ClauseSet keeps its own
// shadow slice so forward/backward subsumption can scan P ∪ U without
// draining the picker.
type shadow struct {
	clauses []*clause.Clause
}

func (s *shadow) add(c *clause.Clause)    { s.clauses = append(s.clauses, c) }
func (s *shadow) remove(c *clause.Clause) {
	for i, x := range s.clauses {
		if x == c {
			s.clauses = append(s.clauses[:i:i], s.clauses[i+1:]...)
			return
		}
	}
}

// Submit runs the §4.4 redundancy pipeline on a newly generated clause
// n: tautology test, forward subsumption against P ∪ U, backward
// subsumption removing clauses in P ∪ U that n properly subsumes, and
// finally insertion into U. It returns ok=true if n survives and was
// inserted, or ok=false if it was discarded as a tautology or
// forward-subsumed. If n is the empty clause it returns ok=true and
// refutation=true so the caller can recognize a refutation — the empty
// clause is never inserted into U since there is nothing left to
// saturate.
func (cs *ClauseSet) Submit(n *clause.Clause) (ok bool, refutation bool) {
	if clause.IsTautology(n) {
		return false, false
	}
	if n.IsEmpty() {
		return true, true
	}
	if cs.forwardSubsumption && cs.forwardSubsumedByAny(n) {
		return false, false
	}
	if cs.backwardSubsumption {
		cs.backwardSubsume(n)
	}
	cs.shadowAll.add(n)
	cs.picker.Push(n)
	return true, false
}

func (cs *ClauseSet) forwardSubsumedByAny(n *clause.Clause) bool {
	for _, p := range cs.Processed {
		if clause.Subsumes(p, n) {
			return true
		}
	}
	for _, u := range cs.shadowAll.clauses {
		if clause.Subsumes(u, n) {
			return true
		}
	}
	return false
}

func (cs *ClauseSet) backwardSubsume(n *clause.Clause) {
	kept := cs.Processed[:0:0]
	for _, p := range cs.Processed {
		if clause.ProperlySubsumes(n, p) {
			continue
		}
		kept = append(kept, p)
	}
	cs.Processed = kept

	var survivors []*clause.Clause
	for _, u := range cs.shadowAll.clauses {
		if clause.ProperlySubsumes(n, u) {
			cs.picker.Remove(u)
			continue
		}
		survivors = append(survivors, u)
	}
	cs.shadowAll.clauses = survivors
}

// PickGiven removes and returns the next given clause from U using the
// configured heuristic, or ok=false if U is empty.
func (cs *ClauseSet) PickGiven() (*clause.Clause, bool) {
	c, ok := cs.picker.Pop()
	if ok {
		cs.shadowAll.remove(c)
	}
	return c, ok
}

// MoveToProcessed inserts g into P and performs the re-check backward
// subsumption that §4.6 calls for when a clause is finally selected.
func (cs *ClauseSet) MoveToProcessed(g *clause.Clause) {
	if cs.backwardSubsumption {
		kept := cs.Processed[:0:0]
		for _, p := range cs.Processed {
			if clause.ProperlySubsumes(g, p) {
				continue
			}
			kept = append(kept, p)
		}
		cs.Processed = kept
	}
	cs.Processed = append(cs.Processed, g)
}

// ForwardSubsumedByProcessed is the cheap re-check §4.6 performs on the
// given clause itself right after picking it, before committing to
// moving it into P.
func (cs *ClauseSet) ForwardSubsumedByProcessed(g *clause.Clause) bool {
	if !cs.forwardSubsumption {
		return false
	}
	for _, p := range cs.Processed {
		if clause.Subsumes(p, g) {
			return true
		}
	}
	return false
}

// Empty reports whether U holds no clauses.
func (cs *ClauseSet) Empty() bool { return cs.picker.Len() == 0 }
