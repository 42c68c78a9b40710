// Package clause implements the §3/§4.4 literal and clause model: signed
// atoms (with symmetric equality literals), clause metadata, tautology
// deletion, and subsumption.
package clause

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/atp/term"
)

// EqualityPredicate is the distinguished arity-2 predicate symbol "=".
const EqualityPredicate = "="

// Literal is a signed atom: (polarity, predicate, args). Equality
// literals use EqualityPredicate and are symmetric for the purposes of
// subsumption/tautology testing while keeping argument order for
// display, per §3.
type Literal struct {
	Positive  bool
	Predicate string
	Args      []term.Term
}

// Pos builds a positive literal.
func Pos(pred string, args ...term.Term) Literal {
	return Literal{Positive: true, Predicate: pred, Args: args}
}

// Neg builds a negative literal.
func Neg(pred string, args ...term.Term) Literal {
	return Literal{Positive: false, Predicate: pred, Args: args}
}

// Eq builds a positive equality literal s = t.
func Eq(s, t term.Term) Literal {
	return Literal{Positive: true, Predicate: EqualityPredicate, Args: []term.Term{s, t}}
}

// Neq builds a negative equality literal s != t, i.e. ¬(s=t).
func Neq(s, t term.Term) Literal {
	return Literal{Positive: false, Predicate: EqualityPredicate, Args: []term.Term{s, t}}
}

// IsEquality reports whether l uses the equality predicate.
func (l Literal) IsEquality() bool { return l.Predicate == EqualityPredicate }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return Literal{Positive: !l.Positive, Predicate: l.Predicate, Args: l.Args}
}

// Atom returns the unsigned atom as a Compound, usable as a unification
// target: unify_lits succeeds iff polarities/predicates match and the
// atoms unify (§4.2).
func (l Literal) Atom() term.Term {
	return term.App(l.Predicate, l.Args...)
}

// ApplyLiteral returns l with sigma applied to every argument.
func ApplyLiteral(sigma term.Substitution, l Literal) Literal {
	args := make([]term.Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = term.Apply(sigma, a)
	}
	return Literal{Positive: l.Positive, Predicate: l.Predicate, Args: args}
}

// Equal is syntactic literal equality, respecting equality-literal
// symmetry (s=t same as t=s) but not general commutativity of other
// predicates.
func Equal(a, b Literal) bool {
	if a.Positive != b.Positive || a.Predicate != b.Predicate || len(a.Args) != len(b.Args) {
		return false
	}
	argsEqual := func(x, y []term.Term) bool {
		for i := range x {
			if !term.Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if argsEqual(a.Args, b.Args) {
		return true
	}
	if a.IsEquality() && len(a.Args) == 2 {
		return term.Equal(a.Args[0], b.Args[1]) && term.Equal(a.Args[1], b.Args[0])
	}
	return false
}

// Complementary reports whether a and b are syntactically complementary
// (same predicate/args, opposite polarity, with equality symmetry),
// the condition the tautology test and binary resolution both check.
func Complementary(a, b Literal) bool {
	if a.Positive == b.Positive {
		return false
	}
	return Equal(Literal{Positive: true, Predicate: a.Predicate, Args: a.Args},
		Literal{Positive: true, Predicate: b.Predicate, Args: b.Args})
}

// UnifyLiterals succeeds iff a and b have the same predicate and arity
// and their argument lists unify. It does not compare polarity — callers
// check that themselves (resolution wants opposite polarity, factoring
// the same) — and it does not consider equality symmetry.
func UnifyLiterals(a, b Literal) (term.Substitution, bool) {
	if a.Predicate != b.Predicate || len(a.Args) != len(b.Args) {
		return term.Substitution{}, false
	}
	return term.Unify(a.Atom(), b.Atom())
}

// Weight implements the §4.5 literal weight formula
// f*|function symbols| + v*|variable occurrences| with the documented
// default constants f=2, v=1.
func Weight(l Literal, f, v int) int {
	symbols, vars := 0, 0
	for _, a := range l.Args {
		symbols += term.SymbolCounts(a)
		vars += term.VarOccurrences(a)
	}
	return f*symbols + v*vars
}

// DefaultWeight is Weight with the documented default constants.
func DefaultWeight(l Literal) int { return Weight(l, 2, 1) }

func (l Literal) String() string {
	sign := ""
	if !l.Positive {
		sign = "~"
	}
	if l.IsEquality() && len(l.Args) == 2 {
		op := "="
		if !l.Positive {
			op = "!="
		}
		return fmt.Sprintf("%s%s%s", l.Args[0], op, l.Args[1])
	}
	if len(l.Args) == 0 {
		return sign + l.Predicate
	}
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s%s(%s)", sign, l.Predicate, strings.Join(parts, ", "))
}
