package heuristic

import (
	"container/heap"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
)

// ClauseWeight is the §4.5 "symbol-count weight" clause evaluation: the
// sum of the default literal weights (f=2, v=1) over the clause.
func ClauseWeight(c *clause.Clause) int {
	w := 0
	for _, l := range c.Literals {
		w += clause.DefaultWeight(l)
	}
	return w
}

// Picker selects the next given clause from the unprocessed set
// (§4.6). Implementations decide the order; saturate.ClauseSet calls
// Push/Pop/Len, and Remove for backward subsumption.
type Picker interface {
	Push(c *clause.Clause)
	Pop() (*clause.Clause, bool)
	Len() int
	// Remove deletes c from the picker's queues (e.g. a backward-
	// subsumption victim) and reports whether it was present.
	Remove(c *clause.Clause) bool
}

// NewPicker builds the Picker named by a core.ClauseHeuristic; the
// string-to-heuristic lookup of the §9 "heuristic registry" is
// core.ParseHeuristic.
func NewPicker(h core.ClauseHeuristic) Picker {
	switch h {
	case core.HeuristicSymbolCount:
		return newWeightPicker()
	case core.HeuristicPickGiven5:
		return newRoundRobinPicker(5)
	default:
		return newFIFOPicker()
	}
}

// fifoPicker returns clauses in insertion order (age), tie-broken by
// nothing else needed since a slice already preserves arrival order.
type fifoPicker struct {
	queue []*clause.Clause
}

func newFIFOPicker() *fifoPicker { return &fifoPicker{} }

func (p *fifoPicker) Push(c *clause.Clause) { p.queue = append(p.queue, c) }

func (p *fifoPicker) Pop() (*clause.Clause, bool) {
	if len(p.queue) == 0 {
		return nil, false
	}
	c := p.queue[0]
	p.queue = p.queue[1:]
	return c, true
}

func (p *fifoPicker) Len() int { return len(p.queue) }

func (p *fifoPicker) Remove(c *clause.Clause) bool {
	_, ok := p.popMatching(func(x *clause.Clause) bool { return x == c })
	return ok
}

// weightHeap is a container/heap min-heap ordered by ClauseWeight, with
// ID as a deterministic tiebreaker.
type weightHeap []*clause.Clause

func (h weightHeap) Len() int { return len(h) }
func (h weightHeap) Less(i, j int) bool {
	wi, wj := ClauseWeight(h[i]), ClauseWeight(h[j])
	if wi != wj {
		return wi < wj
	}
	return h[i].ID < h[j].ID
}
func (h weightHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *weightHeap) Push(x any)   { *h = append(*h, x.(*clause.Clause)) }
func (h *weightHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// weightPicker is the §4.5 "symbol-count weight" evaluation function:
// always returns the lightest clause.
type weightPicker struct {
	h weightHeap
}

func newWeightPicker() *weightPicker {
	w := &weightPicker{}
	heap.Init(&w.h)
	return w
}

func (p *weightPicker) Push(c *clause.Clause) { heap.Push(&p.h, c) }

func (p *weightPicker) Pop() (*clause.Clause, bool) {
	if p.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&p.h).(*clause.Clause), true
}

func (p *weightPicker) Len() int { return len(p.h) }

func (p *weightPicker) Remove(c *clause.Clause) bool {
	_, ok := p.popMatching(func(x *clause.Clause) bool { return x == c })
	return ok
}

// roundRobinPicker implements the §4.5 PickGivenN family: round-robin
// between a FIFO queue and a weight-ordered queue, returning the oldest
// clause once every n selections and the lightest clause otherwise
// (PickGiven5 -> weight four times, FIFO once).
type roundRobinPicker struct {
	n       int
	count   int
	fifo    *fifoPicker
	weights *weightPicker
}

func newRoundRobinPicker(n int) *roundRobinPicker {
	return &roundRobinPicker{n: n, fifo: newFIFOPicker(), weights: newWeightPicker()}
}

func (p *roundRobinPicker) Push(c *clause.Clause) {
	p.fifo.Push(c)
	p.weights.Push(c)
}

func (p *roundRobinPicker) Pop() (*clause.Clause, bool) {
	if p.Len() == 0 {
		return nil, false
	}
	p.count++
	useFIFO := p.count%p.n == 0
	var chosen *clause.Clause
	if useFIFO {
		chosen, _ = p.fifo.popMatching(func(c *clause.Clause) bool { return true })
	} else {
		chosen, _ = p.weights.popMatching(func(c *clause.Clause) bool { return true })
	}
	p.dropFromBoth(chosen)
	return chosen, true
}

func (p *roundRobinPicker) Len() int { return p.fifo.Len() }

func (p *roundRobinPicker) Remove(c *clause.Clause) bool {
	inFifo := p.fifo.Remove(c)
	inWeights := p.weights.Remove(c)
	return inFifo || inWeights
}

// popMatching pops the first element satisfying pred from the FIFO
// queue without otherwise disturbing order.
func (p *fifoPicker) popMatching(pred func(*clause.Clause) bool) (*clause.Clause, bool) {
	for i, c := range p.queue {
		if pred(c) {
			p.queue = append(p.queue[:i:i], p.queue[i+1:]...)
			return c, true
		}
	}
	return nil, false
}

// popMatching pops the lightest element satisfying pred from the weight
// heap, re-heapifying the clauses it had to skip over.
func (p *weightPicker) popMatching(pred func(*clause.Clause) bool) (*clause.Clause, bool) {
	var skipped []*clause.Clause
	var found *clause.Clause
	for p.h.Len() > 0 {
		c := heap.Pop(&p.h).(*clause.Clause)
		if pred(c) {
			found = c
			break
		}
		skipped = append(skipped, c)
	}
	for _, c := range skipped {
		heap.Push(&p.h, c)
	}
	return found, found != nil
}

// dropFromBoth removes chosen from whichever of the two backing queues
// still holds it, keeping the round-robin picker's two views consistent
// by identity (clause.Clause pointers are stable for a given clause).
func (p *roundRobinPicker) dropFromBoth(chosen *clause.Clause) {
	if chosen == nil {
		return
	}
	p.fifo.popMatching(func(c *clause.Clause) bool { return c == chosen })
	p.weights.popMatching(func(c *clause.Clause) bool { return c == chosen })
}
