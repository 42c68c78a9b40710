package model

import "github.com/xDarkicex/atp/clause"

// Holds reports whether c is true under every assignment of its
// variables to domain elements, generalizing the teacher's
// GenerateTruthTable row-enumeration loop from base-2 (boolean) digits
// to base-len(Domain) digits.
func (m *Interpretation) Holds(c *clause.Clause) bool {
	vars := sortedVarNames(c)
	return m.forEachAssignment(vars, Assignment{}, func(a Assignment) bool {
		return m.EvalClause(c, a)
	})
}

// FalsifyingAssignment returns the first assignment (in enumeration
// order) under which c is false, and ok=true if one exists.
func (m *Interpretation) FalsifyingAssignment(c *clause.Clause) (Assignment, bool) {
	vars := sortedVarNames(c)
	var found Assignment
	ok := m.forEachAssignment(vars, Assignment{}, func(a Assignment) bool {
		if !m.EvalClause(c, a) {
			cp := make(Assignment, len(a))
			for k, v := range a {
				cp[k] = v
			}
			found = cp
			return false
		}
		return true
	})
	return found, !ok
}

// CheckAll reports whether every clause in cs holds under m, returning
// the first violated clause otherwise.
func (m *Interpretation) CheckAll(cs []*clause.Clause) (bool, *clause.Clause) {
	for _, c := range cs {
		if !m.Holds(c) {
			return false, c
		}
	}
	return true, nil
}

// forEachAssignment enumerates every assignment of vars (the clause's
// variables, in a fixed order) to domain-element indices, short-
// circuiting as soon as pred returns false, and reports whether pred
// held for every assignment.
func (m *Interpretation) forEachAssignment(vars []string, partial Assignment, pred func(Assignment) bool) bool {
	if len(vars) == 0 {
		return pred(partial)
	}
	name, rest := vars[0], vars[1:]
	for idx := range m.Domain {
		partial[name] = idx
		if !m.forEachAssignment(rest, partial, pred) {
			delete(partial, name)
			return false
		}
	}
	delete(partial, name)
	return true
}

func sortedVarNames(c *clause.Clause) []string {
	set := c.Vars()
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	// Deterministic order matters for reproducible FalsifyingAssignment
	// output; a simple insertion sort avoids pulling in sort for what is
	// always a short slice (clause arity is small in practice).
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
