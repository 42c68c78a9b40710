package clause

import "github.com/xDarkicex/atp/term"

// IsTautology implements the §3/§4.4 tautology test: a clause is
// rejected at creation iff it contains two syntactically complementary
// literals, or a positive equality literal s=s.
func IsTautology(c *Clause) bool {
	for i, l := range c.Literals {
		if l.Positive && l.IsEquality() && len(l.Args) == 2 && term.Equal(l.Args[0], l.Args[1]) {
			return true
		}
		for j := i + 1; j < len(c.Literals); j++ {
			if Complementary(l, c.Literals[j]) {
				return true
			}
		}
	}
	return false
}
