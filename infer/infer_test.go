package infer

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

func TestResolveSimple(t *testing.T) {
	counter := term.NewCounter()
	c := clause.New(clause.Pos("p", term.Var{Name: "X"}))
	d := clause.New(clause.Neg("p", term.Const("a")))

	rs := Resolve(c, d, counter)
	if len(rs) != 1 {
		t.Fatalf("expected exactly one resolvent, got %d", len(rs))
	}
	if !rs[0].Clause.IsEmpty() {
		t.Fatalf("expected empty clause, got %v", rs[0].Clause)
	}
}

func TestResolveRequiresOppositePolarity(t *testing.T) {
	counter := term.NewCounter()
	c := clause.New(clause.Pos("p", term.Const("a")))
	d := clause.New(clause.Pos("p", term.Const("a")))
	if rs := Resolve(c, d, counter); len(rs) != 0 {
		t.Fatalf("same-polarity literals must not resolve, got %d resolvents", len(rs))
	}
}

func TestResolveRespectsSelection(t *testing.T) {
	counter := term.NewCounter()
	// c has two negative literals but only index 1 selected; resolving
	// on index 0 must be blocked.
	c := clause.New(clause.Neg("p", term.Const("a")), clause.Neg("q", term.Const("b")))
	c.Selected = map[int]bool{1: true}
	d := clause.New(clause.Pos("p", term.Const("a")))
	if rs := Resolve(c, d, counter); len(rs) != 0 {
		t.Fatalf("resolution on a non-selected literal must be blocked, got %d", len(rs))
	}
}

func TestFactorsMergeUnifiableLiterals(t *testing.T) {
	counter := term.NewCounter()
	c := clause.New(
		clause.Pos("p", term.Var{Name: "X"}),
		clause.Pos("p", term.Const("a")),
		clause.Pos("q", term.Const("b")),
	)
	fs := Factors(c, counter)
	if len(fs) == 0 {
		t.Fatal("expected at least one factor")
	}
	for _, f := range fs {
		if len(f.Clause.Literals) != 2 {
			t.Fatalf("factor should drop one literal, got %v", f.Clause)
		}
	}
}

func TestEqualityAxiomsOnlyWhenEqualityUsed(t *testing.T) {
	noEq := []*clause.Clause{clause.New(clause.Pos("p", term.Const("a")))}
	if HasEquality(noEq) {
		t.Fatal("no equality literal present")
	}
	withEq := []*clause.Clause{clause.New(clause.Eq(term.Const("a"), term.Const("b")))}
	if !HasEquality(withEq) {
		t.Fatal("expected equality to be detected")
	}
}

func TestEqualityAxiomsIncludeCongruence(t *testing.T) {
	counter := term.NewCounter()
	problem := []*clause.Clause{
		clause.New(clause.Eq(term.App("f", term.Const("a")), term.Const("b"))),
		clause.New(clause.Pos("p", term.Const("a"))),
	}
	sig := CollectSignature(problem)
	axioms := EqualityAxioms(sig, counter)

	// reflexivity + symmetry + transitivity + congruence(f/1) + congruence(p/1)
	if len(axioms) != 5 {
		t.Fatalf("expected 5 axioms, got %d: %v", len(axioms), axioms)
	}
	for _, ax := range axioms {
		if IsGroundAfterFreshRename(ax) {
			t.Fatalf("equality axioms must be fully variabilized: %v", ax)
		}
	}
}

// IsGroundAfterFreshRename is a small local helper checking an axiom
// clause has no ground literal slipped in by mistake.
func IsGroundAfterFreshRename(c *clause.Clause) bool {
	for _, l := range c.Literals {
		for _, a := range l.Args {
			if a.IsGround() {
				return true
			}
		}
	}
	return false
}
