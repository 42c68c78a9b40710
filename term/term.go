// Package term implements the §3/§4.1 term model: variables, compound
// applications, and the substitutions that act on them. Terms are
// immutable values; structural equality is identity for hashing and
// comparison, as the data-model invariants require.
package term

import "strings"

// Term is either a Var or a Compound. It is a closed interface over the
// two variants, the "tagged-variant term type" the design notes call for
// when cache locality does not matter enough to justify an arena.
type Term interface {
	// IsGround reports whether the term contains no variables.
	IsGround() bool
	// String renders the term in TPTP-ish concrete syntax.
	String() string
	isTerm()
}

// Var is a first-order variable, named by a TPTP-convention symbol whose
// first character is uppercase.
type Var struct {
	Name string
}

func (Var) isTerm()          {}
func (v Var) IsGround() bool { return false }
func (v Var) String() string { return v.Name }

// Compound is a function application f(t1, ..., tn); n == 0 denotes a
// constant. The arity of Functor is fixed per problem by invariant, not
// enforced structurally here — that is an arity-mismatch check living at
// the tptp parsing boundary (§7).
type Compound struct {
	Functor string
	Args    []Term
}

func (Compound) isTerm() {}

func (c Compound) IsGround() bool {
	for _, a := range c.Args {
		if !a.IsGround() {
			return false
		}
	}
	return true
}

func (c Compound) String() string {
	if len(c.Args) == 0 {
		return c.Functor
	}
	var b strings.Builder
	b.WriteString(c.Functor)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Const builds a 0-ary Compound, i.e. a constant symbol.
func Const(name string) Compound {
	return Compound{Functor: name, Args: nil}
}

// App builds an n-ary function application.
func App(functor string, args ...Term) Compound {
	return Compound{Functor: functor, Args: args}
}

// Equal is syntactic (not up-to-renaming) term equality.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Compound:
		bc, ok := b.(Compound)
		if !ok || av.Functor != bc.Functor || len(av.Args) != len(bc.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bc.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Vars returns the set of variable names occurring in t, in first-seen
// order (order matters for deterministic renaming, §5).
func Vars(t Term) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v.Name)
			}
		case Compound:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return order
}

// VarSet is a convenience set built from Vars, used by the occurs check
// and by clause-local variable-sharing assertions.
func VarSet(t Term) map[string]bool {
	set := map[string]bool{}
	for _, name := range Vars(t) {
		set[name] = true
	}
	return set
}

// SymbolCounts counts function-symbol occurrences (including constants)
// in t, used by the weight formula of §4.5.
func SymbolCounts(t Term) int {
	switch v := t.(type) {
	case Var:
		return 0
	case Compound:
		n := 1
		for _, a := range v.Args {
			n += SymbolCounts(a)
		}
		return n
	default:
		return 0
	}
}

// VarOccurrences counts variable occurrences (with repeats) in t, the
// other half of the §4.5 weight formula.
func VarOccurrences(t Term) int {
	switch v := t.(type) {
	case Var:
		return 1
	case Compound:
		n := 0
		for _, a := range v.Args {
			n += VarOccurrences(a)
		}
		return n
	default:
		return 0
	}
}
