package clause

import (
	"testing"

	"github.com/xDarkicex/atp/term"
)

func TestIsTautologyReflexiveEquality(t *testing.T) {
	c := New(Eq(term.Const("a"), term.Const("a")))
	if !IsTautology(c) {
		t.Fatal("s=s must be a tautology")
	}
}

func TestIsTautologyComplementary(t *testing.T) {
	c := New(Pos("p", term.Var{Name: "X"}), Neg("p", term.Var{Name: "X"}))
	if !IsTautology(c) {
		t.Fatal("p(X) | ~p(X) must be a tautology")
	}
}

func TestIsTautologyFalsePositive(t *testing.T) {
	c := New(Pos("p", term.Const("a")), Neg("p", term.Const("b")))
	if IsTautology(c) {
		t.Fatal("p(a) | ~p(b) is not a tautology")
	}
}

func TestLiteralEqualitySymmetry(t *testing.T) {
	a := Eq(term.Const("a"), term.Const("b"))
	b := Eq(term.Const("b"), term.Const("a"))
	if !Equal(a, b) {
		t.Fatal("equality literals must be symmetric for comparison")
	}
}

func TestRenamePreservesSharing(t *testing.T) {
	c := New(Pos("p", term.Var{Name: "X"}, term.Var{Name: "X"}))
	counter := term.NewCounter()
	renamed, _ := Rename(c, counter)
	args := renamed.Literals[0].Args
	if !term.Equal(args[0], args[1]) {
		t.Fatal("renaming must preserve variable sharing within a clause")
	}
}

func TestRenameIsFreshAcrossClauses(t *testing.T) {
	c1 := New(Pos("p", term.Var{Name: "X"}))
	c2 := New(Pos("q", term.Var{Name: "X"}))
	counter := term.NewCounter()
	r1, _ := Rename(c1, counter)
	r2, _ := Rename(c2, counter)
	if term.Equal(r1.Literals[0].Args[0], r2.Literals[0].Args[0]) {
		t.Fatal("fresh renaming across clauses must not collide")
	}
}
