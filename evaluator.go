package atp

import (
	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// Builder provides a fluent interface for assembling a clause set by
// hand, the way a test (or a caller skipping the tptp front end
// entirely) names axioms and a conjecture one at a time. It mirrors
// the teacher's Evaluator: an internal value (here, an accumulating
// clause slice) threaded through chained calls and read out at the end
// with a terminal method.
//
// Example:
//
//	clauses := NewBuilder().
//		Axiom("a1", clause.Pos("p", term.Var{Name: "X"})).
//		NegatedConjecture("c1", clause.Neg("p", term.Const("a"))).
//		Build()
type Builder struct {
	clauses []*clause.Clause
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Axiom adds a named axiom clause built from lits.
func (b *Builder) Axiom(name string, lits ...clause.Literal) *Builder {
	return b.add(name, clause.TypeAxiom, lits)
}

// NegatedConjecture adds a named negated-conjecture clause, tagged as
// set-of-support the way tagInput would for a parsed problem.
func (b *Builder) NegatedConjecture(name string, lits ...clause.Literal) *Builder {
	return b.add(name, clause.TypeNegatedConjecture, lits)
}

func (b *Builder) add(name string, t clause.Type, lits []clause.Literal) *Builder {
	c := clause.New(lits...)
	c.Name = name
	c.Type = t
	if t == clause.TypeNegatedConjecture {
		c.SetOfSupport = true
	}
	b.clauses = append(b.clauses, c)
	return b
}

// Build returns the accumulated clause slice.
func (b *Builder) Build() []*clause.Clause {
	return b.clauses
}

// V is a one-letter convenience for building a clause-local variable,
// sparing callers an import of the term package for the common case.
func V(name string) term.Term { return term.Var{Name: name} }

// C is a one-letter convenience for building a constant term.
func C(name string) term.Term { return term.Const(name) }

// F is a one-letter convenience for building a function application.
func F(functor string, args ...term.Term) term.Term { return term.App(functor, args...) }
