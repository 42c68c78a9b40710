package tptp

import "github.com/xDarkicex/atp/term"

// Formula is a first-order formula over term.Term atoms, the AST the
// parser builds for fof() annotated formulae before clausify.go reduces
// it to CNF. cnf() input skips this entirely: its body parses straight
// into a disjunction of literals.
type Formula interface {
	isFormula()
}

// Atom is a predicate application p(t1,...,tn), or an equality atom
// when Predicate == clause.EqualityPredicate.
type Atom struct {
	Predicate string
	Args      []term.Term
	// Neq is true when this atom was written with the "!=" shorthand;
	// it folds a negation into the atom itself rather than requiring a
	// wrapping Not, since "!=" binds tighter than any connective.
	Neq bool
}

func (Atom) isFormula() {}

// Not is logical negation.
type Not struct{ Sub Formula }

func (Not) isFormula() {}

// And is an n-ary conjunction, flattened by the parser where possible.
type And struct{ Args []Formula }

func (And) isFormula() {}

// Or is an n-ary disjunction.
type Or struct{ Args []Formula }

func (Or) isFormula() {}

// Implies is p => q.
type Implies struct{ Left, Right Formula }

func (Implies) isFormula() {}

// Iff is p <=> q.
type Iff struct{ Left, Right Formula }

func (Iff) isFormula() {}

// Xor is p <~> q (exclusive or, i.e. negated Iff).
type Xor struct{ Left, Right Formula }

func (Xor) isFormula() {}

// Forall is !X1,...,Xn : Sub.
type Forall struct {
	Vars []string
	Sub  Formula
}

func (Forall) isFormula() {}

// Exists is ?X1,...,Xn : Sub.
type Exists struct {
	Vars []string
	Sub  Formula
}

func (Exists) isFormula() {}

// Role is the TPTP annotated-formula role (§3 clause Type plus the FOF
// "conjecture" role clausify.go needs to know about).
type Role string

const (
	RoleAxiom             Role = "axiom"
	RoleHypothesis        Role = "hypothesis"
	RoleConjecture        Role = "conjecture"
	RoleNegatedConjecture Role = "negated_conjecture"
	RolePlain             Role = "plain"
)

// Unit is one cnf()/fof() top-level annotated formula as parsed from a
// source file, before clausify.go turns an Formula-bearing fof() unit
// into one or more CNF Clauses.
type Unit struct {
	Name    string
	Role    Role
	IsCNF   bool
	Literal []Atom   // populated when IsCNF; Not wrapping handled by Negated
	Negated []bool   // parallel to Literal
	Formula Formula  // populated when !IsCNF
	Line    int
}

// Include is an include('file', [names]) directive (§E): names is nil
// for an unrestricted include.
type Include struct {
	File  string
	Names []string
	Line  int
}
