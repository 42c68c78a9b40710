package term

// Unify computes a most general unifier of s and t by recursive descent
// on term structure (Robinson's algorithm), with the occurs check
// enabled, per §4.2. It returns (sigma, true) on success or (zero, false)
// on failure; callers must not read the returned Substitution when ok is
// false.
func Unify(s, t Term) (Substitution, bool) {
	return unify(s, t, Empty())
}

func unify(s, t Term, sigma Substitution) (Substitution, bool) {
	s = Apply(sigma, s)
	t = Apply(sigma, t)

	if sv, ok := s.(Var); ok {
		if tv, ok := t.(Var); ok && sv.Name == tv.Name {
			return sigma, true // rule 3: identical variables are skipped
		}
		return bindVar(sv, t, sigma)
	}
	if tv, ok := t.(Var); ok {
		return bindVar(tv, s, sigma)
	}

	sc, sok := s.(Compound)
	tc, tok := t.(Compound)
	if !sok || !tok {
		return Substitution{}, false
	}
	if sc.Functor != tc.Functor || len(sc.Args) != len(tc.Args) {
		return Substitution{}, false
	}
	for i := range sc.Args {
		var ok bool
		sigma, ok = unify(sc.Args[i], tc.Args[i], sigma)
		if !ok {
			return Substitution{}, false
		}
	}
	return sigma, true
}

func bindVar(x Var, u Term, sigma Substitution) (Substitution, bool) {
	if occurs(x.Name, u) {
		return Substitution{}, false
	}
	return Compose(sigma, Empty().Bind(x.Name, u)), true
}

func occurs(name string, t Term) bool {
	switch v := t.(type) {
	case Var:
		return v.Name == name
	case Compound:
		for _, a := range v.Args {
			if occurs(name, a) {
				return true
			}
		}
	}
	return false
}

// Matches computes a substitution sigma, binding only variables of s,
// such that Apply(sigma, s) equals t exactly — the one-sided "matching"
// unification §4.4 requires for subsumption, which must refuse to bind
// variables belonging to the clause being subsumed.
func Matches(s, t Term, sigma Substitution) (Substitution, bool) {
	switch sv := s.(type) {
	case Var:
		if bound, ok := sigma.Lookup(sv.Name); ok {
			if Equal(bound, t) {
				return sigma, true
			}
			return Substitution{}, false
		}
		return sigma.Bind(sv.Name, t), true
	case Compound:
		tc, ok := t.(Compound)
		if !ok || sv.Functor != tc.Functor || len(sv.Args) != len(tc.Args) {
			return Substitution{}, false
		}
		for i := range sv.Args {
			var ok bool
			sigma, ok = Matches(sv.Args[i], tc.Args[i], sigma)
			if !ok {
				return Substitution{}, false
			}
		}
		return sigma, true
	default:
		return Substitution{}, false
	}
}
