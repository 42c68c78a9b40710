package groundsat

import "testing"

func TestSolveSatisfiableUnitPropagation(t *testing.T) {
	cnf := NewCNF()
	cnf.AddClause(NewClause(Literal{Atom: "p"}))
	cnf.AddClause(NewClause(Literal{Atom: "p", Negated: true}, Literal{Atom: "q"}))

	res := NewSolver().Solve(cnf)
	if !res.Satisfiable {
		t.Fatal("expected satisfiable")
	}
	if !res.Assignment["p"] || !res.Assignment["q"] {
		t.Fatalf("expected p=true, q=true, got %v", res.Assignment)
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	cnf := NewCNF()
	cnf.AddClause(NewClause(Literal{Atom: "p"}))
	cnf.AddClause(NewClause(Literal{Atom: "p", Negated: true}))

	res := NewSolver().Solve(cnf)
	if res.Satisfiable {
		t.Fatal("expected unsatisfiable")
	}
}

func TestSolveRequiresBacktracking(t *testing.T) {
	// (p|q) & (~p|q) & (p|~q) & (~p|~q) is unsatisfiable for propositional p,q.
	cnf := NewCNF()
	cnf.AddClause(NewClause(Literal{Atom: "p"}, Literal{Atom: "q"}))
	cnf.AddClause(NewClause(Literal{Atom: "p", Negated: true}, Literal{Atom: "q"}))
	cnf.AddClause(NewClause(Literal{Atom: "p"}, Literal{Atom: "q", Negated: true}))
	cnf.AddClause(NewClause(Literal{Atom: "p", Negated: true}, Literal{Atom: "q", Negated: true}))

	res := NewSolver().Solve(cnf)
	if res.Satisfiable {
		t.Fatal("expected unsatisfiable after exhausting all assignments")
	}
}

func TestSolveEmptyCNFIsTriviallySatisfiable(t *testing.T) {
	res := NewSolver().Solve(NewCNF())
	if !res.Satisfiable {
		t.Fatal("expected the empty problem to be satisfiable")
	}
}
