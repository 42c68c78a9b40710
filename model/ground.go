package model

import (
	"fmt"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/groundsat"
	"github.com/xDarkicex/atp/term"
)

// FindModel searches for a finite interpretation over domain satisfying
// every clause in cs, by grounding out every variable assignment and
// handing the resulting ground propositional problem to groundsat. It
// is restricted to the function-free (EPR) fragment: every argument
// must be a variable or a 0-ary constant, since finding an interpretation
// for a non-constant function symbol is a much harder search (model
// finding proper) this supplementary feature does not attempt. Clauses
// outside the fragment make FindModel return an error rather than a
// silently wrong model.
func FindModel(cs []*clause.Clause, domain Domain) (*Interpretation, bool, error) {
	constants, err := collectConstants(cs)
	if err != nil {
		return nil, false, err
	}

	m := NewInterpretation(domain)
	for i, c := range constants {
		m.SetFunc(c, nil, i%len(domain))
	}

	cnf := groundsat.NewCNF()
	for _, c := range cs {
		if err := groundClause(c, domain, m, cnf); err != nil {
			return nil, false, err
		}
	}

	result := groundsat.NewSolver().Solve(cnf)
	if !result.Satisfiable {
		return nil, false, nil
	}
	for atom, truth := range result.Assignment {
		pred, args := parseAtomKey(atom)
		m.SetPred(pred, args, truth)
	}
	return m, true, nil
}

func collectConstants(cs []*clause.Clause) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	var walk func(t term.Term) error
	walk = func(t term.Term) error {
		c, ok := t.(term.Compound)
		if !ok {
			return nil
		}
		if len(c.Args) > 0 {
			return core.NewProverError(core.KindUnsupportedConstruct, "model", "FindModel",
				"function symbol "+c.Functor+"/"+fmt.Sprint(len(c.Args))+" is outside the function-free fragment FindModel supports")
		}
		if !seen[c.Functor] {
			seen[c.Functor] = true
			out = append(out, c.Functor)
		}
		return nil
	}
	for _, c := range cs {
		for _, l := range c.Literals {
			for _, a := range l.Args {
				if err := walk(a); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func groundClause(c *clause.Clause, domain Domain, m *Interpretation, cnf *groundsat.CNF) error {
	vars := sortedVarNames(c)
	var emit func(idx int, a Assignment) error
	emit = func(idx int, a Assignment) error {
		if idx == len(vars) {
			gc := &groundsat.Clause{}
			for _, l := range c.Literals {
				args := make([]int, len(l.Args))
				for i, t := range l.Args {
					args[i] = m.evalTerm(t, a)
				}
				atomKey := fmt.Sprintf("%s(%s)", l.Predicate, key(args))
				gc.Literals = append(gc.Literals, groundsat.Literal{Atom: atomKey, Negated: !l.Positive})
			}
			cnf.AddClause(gc)
			return nil
		}
		name := vars[idx]
		for i := range domain {
			a[name] = i
			if err := emit(idx+1, a); err != nil {
				return err
			}
		}
		delete(a, name)
		return nil
	}
	return emit(0, Assignment{})
}

func parseAtomKey(atomKey string) (string, []int) {
	i := 0
	for i < len(atomKey) && atomKey[i] != '(' {
		i++
	}
	pred := atomKey[:i]
	if i == len(atomKey) {
		return pred, nil
	}
	inner := atomKey[i+1 : len(atomKey)-1]
	if inner == "" {
		return pred, nil
	}
	var args []int
	start := 0
	for j := 0; j <= len(inner); j++ {
		if j == len(inner) || inner[j] == ',' {
			var v int
			fmt.Sscanf(inner[start:j], "%d", &v)
			args = append(args, v)
			start = j + 1
		}
	}
	return pred, args
}
