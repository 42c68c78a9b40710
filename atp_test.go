package atp

import (
	"testing"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
)

func TestProveClausesUnitResolutionRefutes(t *testing.T) {
	clauses := NewBuilder().
		Axiom("a", clause.Pos("p", V("X"))).
		NegatedConjecture("c", clause.Neg("p", C("a"))).
		Build()

	result := ProveClauses(clauses, core.DialectCNF, DefaultConfig(), nil)
	if result.Status != core.StatusUnsatisfiable {
		t.Fatalf("status = %s, want Unsatisfiable", result.Status)
	}
	if len(result.Refutation) == 0 {
		t.Fatal("expected a non-empty refutation chain")
	}
}

func TestProveClausesDisjointPredicatesSaturate(t *testing.T) {
	clauses := NewBuilder().
		Axiom("a", clause.Pos("p", C("a"))).
		NegatedConjecture("c", clause.Neg("p", C("b"))).
		Build()

	result := ProveClauses(clauses, core.DialectCNF, DefaultConfig(), nil)
	if result.Status != core.StatusSatisfiable {
		t.Fatalf("status = %s, want Satisfiable", result.Status)
	}
}

func TestProveClausesResolvesThroughDisjunction(t *testing.T) {
	clauses := NewBuilder().
		Axiom("a", clause.Pos("p", V("X")), clause.Pos("q", V("X"))).
		Axiom("b", clause.Neg("p", F("f", V("Y")))).
		NegatedConjecture("c", clause.Neg("q", F("f", V("Z")))).
		Build()

	result := ProveClauses(clauses, core.DialectCNF, DefaultConfig(), nil)
	if result.Status != core.StatusUnsatisfiable {
		t.Fatalf("status = %s, want Unsatisfiable", result.Status)
	}
}

func TestBenchmarkComparesHeuristics(t *testing.T) {
	clauses := NewBuilder().
		Axiom("a", clause.Pos("p", V("X"))).
		NegatedConjecture("c", clause.Neg("p", C("a"))).
		Build()

	bench := NewBenchmark()
	for _, h := range []core.ClauseHeuristic{core.HeuristicFIFO, core.HeuristicSymbolCount, core.HeuristicPickGiven5} {
		cfg := DefaultConfig()
		cfg.Heuristic = h
		bench.Add(Trial{Name: h.String(), Clauses: clauses, Dialect: core.DialectCNF, Config: cfg})
	}
	bench.Run()

	if len(bench.Results) != 3 {
		t.Fatalf("expected 3 trial results, got %d", len(bench.Results))
	}
	for _, r := range bench.Results {
		if r.Result.Status != core.StatusUnsatisfiable {
			t.Fatalf("trial %s: status = %s, want Unsatisfiable", r.Name, r.Result.Status)
		}
	}
}
