package clause

import (
	"testing"

	"github.com/xDarkicex/atp/term"
)

func TestSubsumesReflexive(t *testing.T) {
	c := New(Pos("p", term.Var{Name: "X"}))
	if !Subsumes(c, c) {
		t.Fatal("a clause must subsume itself")
	}
}

func TestEmptyClauseSubsumesEverything(t *testing.T) {
	empty := New()
	d := New(Pos("p", term.Const("a")), Neg("q", term.Const("b")))
	if !Subsumes(empty, d) {
		t.Fatal("the empty clause must subsume every clause")
	}
}

func TestSubsumesByInstance(t *testing.T) {
	// p(X) subsumes p(a) | q(b)
	c := New(Pos("p", term.Var{Name: "X"}))
	d := New(Pos("p", term.Const("a")), Pos("q", term.Const("b")))
	if !Subsumes(c, d) {
		t.Fatal("p(X) should subsume p(a) | q(b)")
	}
}

func TestSubsumesRefusesToBindTargetVars(t *testing.T) {
	// p(a) must not subsume p(Y): a is not an instance of Y under
	// one-sided matching that only binds c's variables.
	c := New(Pos("p", term.Const("a")))
	d := New(Pos("p", term.Var{Name: "Y"}))
	if Subsumes(c, d) {
		t.Fatal("p(a) must not subsume p(Y)")
	}
}

func TestSubsumesMultisetNeedsDistinctTargets(t *testing.T) {
	// p(X) | p(Y) should subsume p(a) | p(b) (two distinct literals
	// available) but not p(a) alone.
	c := New(Pos("p", term.Var{Name: "X"}), Pos("p", term.Var{Name: "Y"}))
	d := New(Pos("p", term.Const("a")), Pos("p", term.Const("b")))
	if !Subsumes(c, d) {
		t.Fatal("expected multiset match across two distinct literals")
	}
	single := New(Pos("p", term.Const("a")))
	if Subsumes(c, single) {
		t.Fatal("two-literal clause must not subsume a smaller one")
	}
}

func TestProperlySubsumesExcludesRenamings(t *testing.T) {
	c := New(Pos("p", term.Var{Name: "X"}))
	renaming := New(Pos("p", term.Var{Name: "Y"}))
	if ProperlySubsumes(c, renaming) {
		t.Fatal("a clause must not properly-subsume a variable renaming of itself")
	}
}
