package term

// Substitution is a finite partial function Var -> Term, represented so
// that no variable in its domain occurs in its codomain: the idempotent
// representation §3 requires. Substitutions are built by Unify and by
// Matches (one-sided unification for subsumption); callers should treat
// values returned from those as already idempotent and never mutate a
// Substitution's map directly from outside this package's invariants.
type Substitution struct {
	bindings map[string]Term
}

// Empty returns the identity substitution.
func Empty() Substitution {
	return Substitution{bindings: map[string]Term{}}
}

// Lookup returns the binding for a variable name, if any.
func (s Substitution) Lookup(name string) (Term, bool) {
	if s.bindings == nil {
		return nil, false
	}
	t, ok := s.bindings[name]
	return t, ok
}

// Bind returns a new substitution extending s with name -> t. It does
// not check idempotency itself; callers (Unify) are responsible for
// applying existing bindings to t first.
func (s Substitution) Bind(name string, t Term) Substitution {
	out := make(map[string]Term, len(s.bindings)+1)
	for k, v := range s.bindings {
		out[k] = v
	}
	out[name] = t
	return Substitution{bindings: out}
}

// Domain returns the set of bound variable names.
func (s Substitution) Domain() []string {
	names := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		names = append(names, k)
	}
	return names
}

// Len reports how many bindings s holds.
func (s Substitution) Len() int { return len(s.bindings) }

// Apply is the total homomorphic extension of s to t (§4.1): for a
// variable not in s's domain, returns it unchanged; for a compound,
// applies recursively to every argument.
func Apply(s Substitution, t Term) Term {
	switch v := t.(type) {
	case Var:
		if bound, ok := s.Lookup(v.Name); ok {
			return bound
		}
		return v
	case Compound:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]Term, len(v.Args))
		changed := false
		for i, a := range v.Args {
			na := Apply(s, a)
			args[i] = na
			if !Equal(na, a) {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return Compound{Functor: v.Functor, Args: args}
	default:
		return t
	}
}

// Compose returns rho such that for every x, rho(x) = apply(tau, sigma(x)),
// matching the composition law of §4.1. Trivial bindings x -> x introduced
// by the composition are dropped so the result stays in reduced form.
func Compose(sigma, tau Substitution) Substitution {
	out := Empty()
	for name, t := range sigma.bindings {
		nt := Apply(tau, t)
		if v, ok := nt.(Var); ok && v.Name == name {
			continue
		}
		out = out.Bind(name, nt)
	}
	for name, t := range tau.bindings {
		if _, already := sigma.bindings[name]; already {
			continue
		}
		if v, ok := t.(Var); ok && v.Name == name {
			continue
		}
		out = out.Bind(name, t)
	}
	return out
}

// Restrict returns the restriction of s to the variables in names,
// used when projecting an MGU back onto a clause's original variables.
func Restrict(s Substitution, names map[string]bool) Substitution {
	out := Empty()
	for name, t := range s.bindings {
		if names[name] {
			out = out.Bind(name, t)
		}
	}
	return out
}
