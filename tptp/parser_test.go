package tptp

import (
	"errors"
	"testing"

	"github.com/xDarkicex/atp/core"
)

func TestLexBasicTokens(t *testing.T) {
	toks := NewLexer("cnf(a, axiom, p(X) | ~q(a)).").Lex()
	var types []TokenType
	for _, tk := range toks {
		types = append(types, tk.Type)
	}
	want := []TokenType{
		TokCNF, TokLParen, TokAtomName, TokComma, TokAtomName, TokComma,
		TokAtomName, TokLParen, TokVar, TokRParen, TokOr, TokNot, TokAtomName,
		TokLParen, TokAtomName, TokRParen, TokRParen, TokDot, TokEOF,
	}
	if len(types) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestParseCNFUnit(t *testing.T) {
	units, includes, err := ParseFile(`cnf(c1, axiom, p(X) | ~q(f(X))).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(includes) != 0 {
		t.Fatalf("unexpected includes: %v", includes)
	}
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	u := units[0]
	if u.Name != "c1" || u.Role != RoleAxiom || !u.IsCNF {
		t.Fatalf("unexpected unit metadata: %+v", u)
	}
	if len(u.Literal) != 2 || u.Negated[0] != false || u.Negated[1] != true {
		t.Fatalf("unexpected literals: %+v / %v", u.Literal, u.Negated)
	}
}

func TestParseFOFQuantifiersAndConnectives(t *testing.T) {
	src := `fof(f1, axiom, ! [X] : (p(X) => ? [Y] : q(X, Y))).`
	units, _, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(units) != 1 || units[0].IsCNF {
		t.Fatalf("expected one fof unit, got %+v", units)
	}
	outer, ok := units[0].Formula.(Forall)
	if !ok || len(outer.Vars) != 1 || outer.Vars[0] != "X" {
		t.Fatalf("expected outer Forall over X, got %#v", units[0].Formula)
	}
	if _, ok := outer.Sub.(Implies); !ok {
		t.Fatalf("expected Implies under the quantifier, got %#v", outer.Sub)
	}
}

func TestParseEqualityAndDisequality(t *testing.T) {
	units, _, err := ParseFile(`cnf(e1, axiom, a = b | c != d).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	lits := units[0].Literal
	neg := units[0].Negated
	if len(lits) != 2 {
		t.Fatalf("expected 2 literals, got %d", len(lits))
	}
	if lits[0].Predicate != "=" || neg[0] {
		t.Fatalf("expected positive equality literal, got %+v neg=%v", lits[0], neg[0])
	}
	if lits[1].Predicate != "=" || !lits[1].Neq || neg[1] {
		t.Fatalf("expected a !=-shorthand literal, got %+v neg=%v", lits[1], neg[1])
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, _, err := ParseFile("cnf(a, axiom, p(X) |).")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var pe *core.ProverError
	if !errors.As(err, &pe) || pe.Line == 0 || pe.Column == 0 {
		t.Fatalf("expected a parse error carrying a line/column position, got %v", err)
	}
}

func TestClausifyDistributesOrOverAnd(t *testing.T) {
	// fof(f, axiom, (p & q) | r). distributes to (p|r) & (q|r).
	src := `fof(f, axiom, (p & q) | r).`
	units, _, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	clauses := Clausify(units[0].Formula, units[0].Name, units[0].Role, NewSkolemSource())
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses from distribution, got %d: %v", len(clauses), clauses)
	}
	for _, c := range clauses {
		if len(c.Literals) != 2 {
			t.Fatalf("expected each distributed clause to have 2 literals, got %v", c)
		}
	}
}

func TestClausifySkolemizesExistential(t *testing.T) {
	src := `fof(f, axiom, ! [X] : ? [Y] : p(X, Y)).`
	units, _, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	clauses := Clausify(units[0].Formula, units[0].Name, units[0].Role, NewSkolemSource())
	if len(clauses) != 1 || len(clauses[0].Literals) != 1 {
		t.Fatalf("expected one unit clause, got %v", clauses)
	}
	args := clauses[0].Literals[0].Args
	if len(args) != 2 {
		t.Fatalf("expected binary literal, got %v", args)
	}
	if args[0].String() != "X" {
		t.Fatalf("expected first arg to stay the universal variable X, got %s", args[0])
	}
	if args[1].String() == "Y" {
		t.Fatalf("expected Y to be Skolemized away, got bare variable")
	}
}

func TestClauseFromCNFUnitPreservesNegation(t *testing.T) {
	units, _, err := ParseFile(`cnf(c, negated_conjecture, ~p(a)).`)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	c := ClauseFromCNFUnit(units[0])
	if len(c.Literals) != 1 || c.Literals[0].Positive {
		t.Fatalf("expected one negative literal, got %v", c.Literals)
	}
}
