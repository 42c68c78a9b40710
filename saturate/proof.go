package saturate

import "github.com/xDarkicex/atp/clause"

// ExtractProof traverses parent links from the empty clause in reverse
// topological order and returns every ancestor with its inference
// annotation, axioms first and the empty clause last, per §4.6's proof
// extraction rule. registry resolves a Parent's ClauseID back to the
// clause value; it is Engine's own record of every clause it has ever
// assigned an ID to, so the proof can still be rendered even for
// ancestors later removed from the active processed/unprocessed sets by
// backward subsumption.
func ExtractProof(goal *clause.Clause, registry map[int]*clause.Clause) []*clause.Clause {
	visited := map[int]bool{}
	var order []*clause.Clause

	var visit func(c *clause.Clause)
	visit = func(c *clause.Clause) {
		if c == nil || visited[c.ID] {
			return
		}
		visited[c.ID] = true
		for _, p := range c.Parents {
			if parent, ok := registry[p.ClauseID]; ok {
				visit(parent)
			}
		}
		order = append(order, c)
	}
	visit(goal)
	return order
}
