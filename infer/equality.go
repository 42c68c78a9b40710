package infer

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// Sym names a function or predicate symbol together with its fixed
// arity, per the §3 invariant that arity is fixed per problem.
type Sym struct {
	Name  string
	Arity int
}

// Signature is the set of function and (non-equality) predicate symbols
// occurring in a problem, collected once before equality-axiom
// synthesis.
type Signature struct {
	Functions  []Sym
	Predicates []Sym
}

// CollectSignature walks every clause and records every distinct
// function symbol (including 0-ary constants) and predicate symbol
// (excluding "=") it finds, sorted by name then arity so axiom
// synthesis is deterministic (§8).
func CollectSignature(clauses []*clause.Clause) Signature {
	funcs := map[Sym]bool{}
	preds := map[Sym]bool{}
	var walkTerm func(term.Term)
	walkTerm = func(t term.Term) {
		c, ok := t.(term.Compound)
		if !ok {
			return
		}
		funcs[Sym{Name: c.Functor, Arity: len(c.Args)}] = true
		for _, a := range c.Args {
			walkTerm(a)
		}
	}
	for _, cl := range clauses {
		for _, l := range cl.Literals {
			if !l.IsEquality() {
				preds[Sym{Name: l.Predicate, Arity: len(l.Args)}] = true
			}
			for _, a := range l.Args {
				walkTerm(a)
			}
		}
	}
	return Signature{Functions: sortedSyms(funcs), Predicates: sortedSyms(preds)}
}

func sortedSyms(set map[Sym]bool) []Sym {
	// maps.Keys gives no ordering guarantee of its own; the sort below
	// is what makes axiom synthesis order deterministic (§8), not the
	// key extraction itself.
	out := maps.Keys(set)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}

// HasEquality reports whether any literal in clauses uses "=", the
// §4.3 precondition for synthesizing equality axioms at all.
func HasEquality(clauses []*clause.Clause) bool {
	for _, cl := range clauses {
		for _, l := range cl.Literals {
			if l.IsEquality() {
				return true
			}
		}
	}
	return false
}

// EqualityAxioms synthesizes the reflexivity, symmetry, transitivity,
// and per-symbol congruence axioms of §4.3, using fresh variables drawn
// from counter so the axioms never collide with problem clauses. They
// are meant to be added exactly once, before saturation starts.
func EqualityAxioms(sig Signature, counter *term.Counter) []*clause.Clause {
	var out []*clause.Clause

	x, y, z := term.Var{Name: counter.Next()}, term.Var{Name: counter.Next()}, term.Var{Name: counter.Next()}
	out = append(out, annotate(clause.New(clause.Eq(x, x)), "reflexivity"))
	out = append(out, annotate(clause.New(clause.Neq(x, y), clause.Eq(y, x)), "symmetry"))
	out = append(out, annotate(clause.New(clause.Neq(x, y), clause.Neq(y, z), clause.Eq(x, z)), "transitivity"))

	for _, f := range sig.Functions {
		if f.Arity == 0 {
			continue // a constant has nothing to substitute into
		}
		out = append(out, annotate(congruenceClause(f, counter, false), "congruence"))
	}
	for _, p := range sig.Predicates {
		out = append(out, annotate(congruenceClause(p, counter, true), "congruence"))
	}
	return out
}

func congruenceClause(s Sym, counter *term.Counter, predicate bool) *clause.Clause {
	xs := make([]term.Term, s.Arity)
	ys := make([]term.Term, s.Arity)
	lits := make([]clause.Literal, 0, s.Arity+1)
	for i := 0; i < s.Arity; i++ {
		xi := term.Var{Name: counter.Next()}
		yi := term.Var{Name: counter.Next()}
		xs[i], ys[i] = xi, yi
		lits = append(lits, clause.Neq(xi, yi))
	}
	if predicate {
		lits = append(lits, clause.Neg(s.Name, xs...), clause.Pos(s.Name, ys...))
	} else {
		lits = append(lits, clause.Eq(term.App(s.Name, xs...), term.App(s.Name, ys...)))
	}
	return clause.New(lits...)
}

func annotate(c *clause.Clause, name string) *clause.Clause {
	c.Type = clause.TypeEqualityAxiom
	c.Inference = name
	c.Name = name
	return c
}
