package model

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

func TestFindModelSatisfiableGroundProblem(t *testing.T) {
	// p(a) | p(b), over the two-element domain {d0, d1}: satisfiable.
	c := clause.New(clause.Pos("p", term.Const("a")), clause.Pos("p", term.Const("b")))
	m, ok, err := FindModel([]*clause.Clause{c}, Domain{"d0", "d1"})
	if err != nil {
		t.Fatalf("FindModel: %v", err)
	}
	if !ok {
		t.Fatal("expected a model to be found")
	}
	if !m.Holds(c) {
		t.Fatal("returned interpretation should satisfy the input clause")
	}
}

func TestFindModelUnsatisfiableGroundProblem(t *testing.T) {
	c1 := clause.New(clause.Pos("p", term.Const("a")))
	c2 := clause.New(clause.Neg("p", term.Const("a")))
	_, ok, err := FindModel([]*clause.Clause{c1, c2}, Domain{"d0"})
	if err != nil {
		t.Fatalf("FindModel: %v", err)
	}
	if ok {
		t.Fatal("expected no model for a directly contradictory pair")
	}
}

func TestFindModelRejectsNonConstantFunctions(t *testing.T) {
	c := clause.New(clause.Pos("p", term.App("f", term.Var{Name: "X"})))
	_, _, err := FindModel([]*clause.Clause{c}, Domain{"d0"})
	if err == nil {
		t.Fatal("expected an error for a clause outside the function-free fragment")
	}
}
