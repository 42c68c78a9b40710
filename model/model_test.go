package model

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

func TestHoldsUniversalClause(t *testing.T) {
	// domain {0,1}; p holds for every element: p(X) should hold universally.
	m := NewInterpretation(Domain{"a", "b"})
	m.SetPred("p", []int{0}, true)
	m.SetPred("p", []int{1}, true)

	c := clause.New(clause.Pos("p", term.Var{Name: "X"}))
	if !m.Holds(c) {
		t.Fatal("expected p(X) to hold for every domain element")
	}
}

func TestFalsifyingAssignmentFound(t *testing.T) {
	m := NewInterpretation(Domain{"a", "b"})
	m.SetPred("p", []int{0}, true)
	m.SetPred("p", []int{1}, false)

	c := clause.New(clause.Pos("p", term.Var{Name: "X"}))
	a, ok := m.FalsifyingAssignment(c)
	if !ok {
		t.Fatal("expected a falsifying assignment")
	}
	if a["X"] != 1 {
		t.Fatalf("expected X=1 to falsify, got %v", a)
	}
}

func TestEvalLiteralEquality(t *testing.T) {
	m := NewInterpretation(Domain{"a", "b"})
	m.SetFunc("c", nil, 0)
	lit := clause.Eq(term.Const("c"), term.Var{Name: "X"})
	if !m.EvalLiteral(lit, Assignment{"X": 0}) {
		t.Fatal("expected c = X to hold when X is bound to c's interpretation")
	}
	if m.EvalLiteral(lit, Assignment{"X": 1}) {
		t.Fatal("expected c = X to fail when X is bound elsewhere")
	}
}

func TestCheckAllReportsFirstViolation(t *testing.T) {
	m := NewInterpretation(Domain{"a"})
	m.SetPred("p", []int{0}, false)
	bad := clause.New(clause.Pos("p", term.Var{Name: "X"}))
	ok, violated := m.CheckAll([]*clause.Clause{bad})
	if ok || violated != bad {
		t.Fatal("expected CheckAll to report the violated clause")
	}
}
