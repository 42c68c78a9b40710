package groundsat

// Solver runs DPLL over a ground CNF instance.
type Solver struct {
	cnf        *CNF
	assignment Assignment
	decisions  int
	propagations int
}

// NewSolver builds a Solver.
func NewSolver() *Solver { return &Solver{} }

// Solve returns whether cnf is satisfiable, and a witnessing assignment
// if so.
func (s *Solver) Solve(cnf *CNF) *Result {
	s.cnf = cnf
	s.assignment = make(Assignment)
	s.decisions = 0
	s.propagations = 0

	sat := s.search()
	res := &Result{Satisfiable: sat, Decisions: s.decisions, Propagations: s.propagations}
	if sat {
		res.Assignment = s.assignment.Clone()
	}
	return res
}

func (s *Solver) search() bool {
	conflict := s.unitPropagate()
	if conflict {
		return false
	}
	s.pureLiteralEliminate()

	if s.allSatisfied() {
		return true
	}

	atom := s.chooseDecisionAtom()
	if atom == "" {
		return false
	}
	s.decisions++

	for _, value := range [2]bool{true, false} {
		saved := s.assignment.Clone()
		s.assignment[atom] = value
		if s.search() {
			return true
		}
		s.assignment = saved
	}
	return false
}

func (s *Solver) unitPropagate() (conflict bool) {
	changed := true
	for changed {
		changed = false
		for _, c := range s.cnf.Clauses {
			if s.assignment.Satisfies(c) {
				continue
			}
			if s.assignment.Conflicts(c) {
				return true
			}
			unassigned := s.unassignedLiterals(c)
			if len(unassigned) == 1 {
				lit := unassigned[0]
				s.assignment[lit.Atom] = !lit.Negated
				s.propagations++
				changed = true
			}
		}
	}
	return false
}

func (s *Solver) pureLiteralEliminate() {
	polarity := map[string]int{}
	seen := map[string]bool{}
	for _, c := range s.cnf.Clauses {
		if s.assignment.Satisfies(c) {
			continue
		}
		for _, l := range c.Literals {
			if s.assignment.IsAssigned(l.Atom) {
				continue
			}
			seen[l.Atom] = true
			if l.Negated {
				polarity[l.Atom]--
			} else {
				polarity[l.Atom]++
			}
		}
	}
	for atom := range seen {
		if s.assignment.IsAssigned(atom) {
			continue
		}
		switch {
		case polarity[atom] > 0:
			s.assignment[atom] = true
		case polarity[atom] < 0:
			s.assignment[atom] = false
		}
	}
}

func (s *Solver) allSatisfied() bool {
	for _, c := range s.cnf.Clauses {
		if !s.assignment.Satisfies(c) {
			return false
		}
	}
	return true
}

func (s *Solver) chooseDecisionAtom() string {
	for _, atom := range s.cnf.Atoms {
		if !s.assignment.IsAssigned(atom) {
			return atom
		}
	}
	return ""
}

func (s *Solver) unassignedLiterals(c *Clause) []Literal {
	var out []Literal
	for _, l := range c.Literals {
		if !s.assignment.IsAssigned(l.Atom) {
			out = append(out, l)
		}
	}
	return out
}
