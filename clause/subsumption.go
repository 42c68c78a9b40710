package clause

import "github.com/xDarkicex/atp/term"

// Subsumes implements §4.4: c subsumes d iff there exists a substitution
// sigma with c*sigma a sub-multiset of d. The search is backtracking
// multiset matching: each literal of c is assigned, in turn, to some
// not-yet-used literal of d that it matches under a substitution
// consistent with all previous assignments, refusing ever to bind a
// variable of d (one-sided matching via term.Matches).
//
// The empty clause subsumes everything; a clause subsumes itself
// (reflexivity), matching the §4.4 tie-break rules.
func Subsumes(c, d *Clause) bool {
	if c.IsEmpty() {
		return true
	}
	used := make([]bool, len(d.Literals))
	return subsumesFrom(c.Literals, d.Literals, used, term.Empty())
}

func subsumesFrom(cLits, dLits []Literal, used []bool, sigma term.Substitution) bool {
	if len(cLits) == 0 {
		return true
	}
	head, rest := cLits[0], cLits[1:]
	for i, dl := range dLits {
		if used[i] {
			continue
		}
		if next, ok := matchLiteral(head, dl, sigma); ok {
			used[i] = true
			if subsumesFrom(rest, dLits, used, next) {
				return true
			}
			used[i] = false
		}
	}
	return false
}

// matchLiteral extends sigma so that Apply(sigma, c) == d for a single
// literal pair, respecting polarity and equality-literal symmetry (a
// literal s=t may match t=s in the target clause).
func matchLiteral(c, d Literal, sigma term.Substitution) (term.Substitution, bool) {
	if c.Positive != d.Positive || c.Predicate != d.Predicate || len(c.Args) != len(d.Args) {
		return term.Substitution{}, false
	}
	if next, ok := matchArgs(c.Args, d.Args, sigma); ok {
		return next, true
	}
	if c.IsEquality() && len(c.Args) == 2 {
		swapped := []term.Term{d.Args[1], d.Args[0]}
		return matchArgs(c.Args, swapped, sigma)
	}
	return term.Substitution{}, false
}

func matchArgs(cArgs, dArgs []term.Term, sigma term.Substitution) (term.Substitution, bool) {
	for i := range cArgs {
		var ok bool
		sigma, ok = term.Matches(cArgs[i], dArgs[i], sigma)
		if !ok {
			return term.Substitution{}, false
		}
	}
	return sigma, true
}

// ProperlySubsumes reports whether c subsumes d but d does not subsume c
// up to variable renaming — the "proper subsumption" condition §4.4
// requires for backward subsumption, to avoid a newly derived clause and
// an existing renaming of it deleting each other.
func ProperlySubsumes(c, d *Clause) bool {
	if !Subsumes(c, d) {
		return false
	}
	return !(len(c.Literals) == len(d.Literals) && Subsumes(d, c))
}
