package clause

import (
	"strings"

	"github.com/xDarkicex/atp/term"
)

// Type is the clause provenance of §3: axiom, negated conjecture, or
// derived.
type Type int

const (
	TypeAxiom Type = iota
	TypeNegatedConjecture
	TypeDerived
	TypeEqualityAxiom
)

func (t Type) String() string {
	switch t {
	case TypeAxiom:
		return "axiom"
	case TypeNegatedConjecture:
		return "negated_conjecture"
	case TypeDerived:
		return "derived"
	case TypeEqualityAxiom:
		return "equality_axiom"
	default:
		return "unknown"
	}
}

// Parent names one clause the inference that produced this clause
// consumed. LiteralAt has room for the literal index it resolved or
// factored upon, but saturate.Engine does not fill it in: it is 0 for
// every clause the engine derives.
type Parent struct {
	ClauseID  int
	LiteralAt int
}

// Clause is a finite multiset of literals interpreted disjunctively
// (§3). The empty clause (len(Literals) == 0) denotes the bottom
// ⊥. Clauses are immutable after creation apart from the one-time
// Selection/Weight assignment made when they enter the unprocessed set.
type Clause struct {
	ID       int
	Literals []Literal
	Type     Type
	Name     string // the TPTP clause name, for proof output
	Inference string // e.g. "resolution", "factoring", "input"
	Parents  []Parent

	// SetOfSupport is true for negated-conjecture clauses and any
	// resolvent inheriting it from a true-tagged parent (§4.6, §9).
	SetOfSupport bool

	// Selected is the selection bitmap computed once when the clause
	// enters the unprocessed set (§9 design note: mutation-by-bitmap,
	// not by mutating literals). A nil map means no selection was
	// requested/performed; resolution and factoring treat that as "every
	// literal eligible" (see Eligible).
	Selected map[int]bool

	// Weight is a slot for an evaluation weight. The engine does not
	// assign it; the clause-selection heuristics compute
	// heuristic.ClauseWeight on demand instead.
	Weight int
}

// New builds a clause from literals with no metadata set; callers
// (saturate.Engine) are responsible for assigning ID/Type/etc.
func New(lits ...Literal) *Clause {
	return &Clause{Literals: lits}
}

// IsEmpty reports whether c is the empty clause (⊥).
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// HasSelection reports whether any literal of c is marked selected.
func (c *Clause) HasSelection() bool {
	for _, v := range c.Selected {
		if v {
			return true
		}
	}
	return false
}

// IsSelected reports whether the literal at index i is selected.
func (c *Clause) IsSelected(i int) bool {
	return c.Selected != nil && c.Selected[i]
}

// Eligible returns the indices of literals of c allowed to participate
// as the resolved-upon/factored-upon literal under the §4.3 selection
// restriction: if c has any selected literal, only selected literals are
// eligible; otherwise every literal is eligible.
func (c *Clause) Eligible() []int {
	if c.HasSelection() {
		idx := make([]int, 0, len(c.Literals))
		for i := range c.Literals {
			if c.IsSelected(i) {
				idx = append(idx, i)
			}
		}
		return idx
	}
	idx := make([]int, len(c.Literals))
	for i := range c.Literals {
		idx[i] = i
	}
	return idx
}

// Vars returns the set of clause-local variable names occurring
// anywhere in c.
func (c *Clause) Vars() map[string]bool {
	set := map[string]bool{}
	for _, l := range c.Literals {
		for _, a := range l.Args {
			for name := range term.VarSet(a) {
				set[name] = true
			}
		}
	}
	return set
}

// Apply returns a new clause with sigma applied to every literal,
// keeping the same metadata (callers overwrite Literals/ID/etc. as
// needed — Apply itself never mutates c).
func Apply(sigma term.Substitution, c *Clause) *Clause {
	lits := make([]Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = applyLiteral(sigma, l)
	}
	out := *c
	out.Literals = lits
	return &out
}

func applyLiteral(sigma term.Substitution, l Literal) Literal {
	args := make([]term.Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = term.Apply(sigma, a)
	}
	return Literal{Positive: l.Positive, Predicate: l.Predicate, Args: args}
}

// Rename returns a copy of c with every variable replaced by a globally
// fresh name, plus the renaming substitution, implementing the
// fresh_rename(clause) operation of §4.1.
func Rename(c *Clause, counter *term.Counter) (*Clause, term.Substitution) {
	seen := map[string]string{}
	lits := make([]Literal, len(c.Literals))
	for i, l := range c.Literals {
		args := make([]term.Term, len(l.Args))
		for j, a := range l.Args {
			args[j] = term.RenameTerm(a, counter, seen)
		}
		lits[i] = Literal{Positive: l.Positive, Predicate: l.Predicate, Args: args}
	}
	sigma := term.Empty()
	for old, fresh := range seen {
		sigma = sigma.Bind(old, term.Var{Name: fresh})
	}
	return &Clause{Literals: lits, Type: c.Type, Name: c.Name, SetOfSupport: c.SetOfSupport}, sigma
}

func (c *Clause) String() string {
	if c.IsEmpty() {
		return "$false"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}
