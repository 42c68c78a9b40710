package tptp

import "github.com/xDarkicex/atp/clause"

// LoadProblem reads path (resolving any include() directives against
// searchPaths) and reduces every unit to a Clause, negating a bare
// "conjecture" role along the way per the §6 "negate the conjecture"
// rule. It reports core.DialectFOF if any fof() unit was present,
// core.DialectCNF otherwise, matching the SZS-status table's dialect
// split. forceClausify is the §6 `-i` flag: when true, every unit —
// including ones already written as cnf() — is routed through the
// fof() clausification pipeline instead of being trusted as already
// clausal; when false (the default), a cnf() unit's own literals are
// used directly.
func LoadProblem(path string, searchPaths []string, forceClausify bool) ([]*clause.Clause, bool, error) {
	units, err := NewLoader(searchPaths).Load(path)
	if err != nil {
		return nil, false, err
	}
	return ClausifyUnits(units, forceClausify)
}

// ClausifyUnits reduces a slice of already-parsed units to clauses,
// the part of LoadProblem that does not touch the filesystem (useful
// for tests that build Units directly).
func ClausifyUnits(units []Unit, forceClausify bool) ([]*clause.Clause, bool, error) {
	sk := NewSkolemSource()
	var all []*clause.Clause
	isFOF := false
	for _, u := range units {
		if !u.IsCNF {
			isFOF = true
		}
		if u.IsCNF && !forceClausify {
			all = append(all, ClauseFromCNFUnit(u))
			continue
		}
		f := u.Formula
		if u.IsCNF {
			f = cnfUnitFormula(u)
		}
		role := u.Role
		if role == RoleConjecture {
			f = Not{Sub: f}
			role = RoleNegatedConjecture
		}
		all = append(all, Clausify(f, u.Name, role, sk)...)
	}
	return all, isFOF, nil
}

// cnfUnitFormula reconstructs the disjunctive Formula a cnf() unit's
// flat literal list denotes, so -i can push it back through the same
// eliminate/NNF/skolemize/distribute pipeline fof() units use instead
// of the direct ClauseFromCNFUnit shortcut. There are no quantifiers or
// connectives to eliminate in a cnf() unit, so Clausify reduces this
// back to (close to) the same clause it started from — the point of
// -i is forcing the code path, not changing the result.
func cnfUnitFormula(u Unit) Formula {
	lits := make([]Formula, len(u.Literal))
	for i, a := range u.Literal {
		positive := !(u.Negated[i] != a.Neq)
		atom := Atom{Predicate: a.Predicate, Args: a.Args}
		if positive {
			lits[i] = atom
		} else {
			lits[i] = Not{Sub: atom}
		}
	}
	if len(lits) == 1 {
		return lits[0]
	}
	return Or{Args: lits}
}
