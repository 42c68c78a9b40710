package tptp

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/saturate"
)

// TestClausifyUnitsNegatesConjectureRole checks the §6 "for role =
// conjecture, the formula is negated before clausification" rule
// directly: a bare conjecture unit must come out of ClausifyUnits
// wrapped in Not and tagged negated_conjecture, never left as a
// conjecture clause.
func TestClausifyUnitsNegatesConjectureRole(t *testing.T) {
	units, _, err := ParseFile(`fof(c, conjecture, ? [X] : (p(X) | ~p(a))).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if units[0].Role != RoleConjecture {
		t.Fatalf("expected the parsed unit to keep role conjecture before clausification, got %s", units[0].Role)
	}

	clauses, isFOF, err := ClausifyUnits(units, false)
	if err != nil {
		t.Fatalf("ClausifyUnits: %v", err)
	}
	if !isFOF {
		t.Fatal("expected isFOF to be true for a fof() unit")
	}
	if len(clauses) == 0 {
		t.Fatal("expected at least one clause from the negated conjecture")
	}
	for _, c := range clauses {
		if c.Type != clause.TypeNegatedConjecture {
			t.Fatalf("expected every clause to be tagged negated_conjecture, got %s: %v", c.Type, c)
		}
	}
}

// TestClausifyUnitsRowFourReportsTheorem is §8 row 4:
// fof(c,conjecture, ?[X]: p(X) | ~p(a)). with -i -> Theorem. It drives
// the full front-end-to-engine path: parse, negate the conjecture,
// clausify, and saturate, checking the final SZS status rather than
// just the intermediate clause shape.
func TestClausifyUnitsRowFourReportsTheorem(t *testing.T) {
	units, _, err := ParseFile(`fof(c, conjecture, ? [X] : (p(X) | ~p(a))).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	clauses, isFOF, err := ClausifyUnits(units, true)
	if err != nil {
		t.Fatalf("ClausifyUnits: %v", err)
	}
	dialect := core.DialectCNF
	if isFOF {
		dialect = core.DialectFOF
	}

	result := saturate.NewEngine(core.DefaultConfig(), nil).Run(clauses, dialect)
	if result.Status != core.StatusTheorem {
		t.Fatalf("status = %s, want Theorem", result.Status)
	}
}

// TestClausifyUnitsForceClausifyRoutesCNFThroughPipeline is the -i
// "force clausification regardless of tag" behavior (§6): a cnf() unit
// still denotes the same clause whether or not -i pushed it through
// the fof() eliminate/NNF/skolemize/distribute pipeline, since it has
// no quantifiers or connectives for that pipeline to act on.
func TestClausifyUnitsForceClausifyRoutesCNFThroughPipeline(t *testing.T) {
	units, _, err := ParseFile(`cnf(c1, axiom, p(a) | ~q(b)).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	direct, _, err := ClausifyUnits(units, false)
	if err != nil {
		t.Fatalf("ClausifyUnits(direct): %v", err)
	}
	forced, _, err := ClausifyUnits(units, true)
	if err != nil {
		t.Fatalf("ClausifyUnits(forced): %v", err)
	}

	if len(direct) != 1 || len(forced) != 1 {
		t.Fatalf("expected one clause either way, got direct=%v forced=%v", direct, forced)
	}
	if direct[0].String() != forced[0].String() {
		t.Fatalf("forcing clausification changed the clause: direct=%s forced=%s", direct[0], forced[0])
	}
}
