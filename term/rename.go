package term

import (
	"fmt"
	"sync/atomic"
)

// Counter is the "global fresh-variable counter" of §5: the only
// process-wide mutable state in the engine. It is not a package-level
// global — an Engine (saturate.Engine) owns one instance and resets it
// per problem to keep given-clause runs deterministic, per the
// "initialization contract" design note.
type Counter struct {
	n int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter { return &Counter{} }

// Next returns a fresh variable name guaranteed not to collide with any
// name produced earlier by this counter.
func (c *Counter) Next() string {
	n := atomic.AddInt64(&c.n, 1)
	return fmt.Sprintf("_G%d", n)
}

// Reset zeroes the counter, restoring the state a fresh problem run
// needs for byte-identical determinism (§8).
func (c *Counter) Reset() { atomic.StoreInt64(&c.n, 0) }

// RenameTerm applies a fresh-variable substitution built on the fly: any
// variable encountered for the first time is mapped to a new name drawn
// from counter, and subsequent occurrences reuse the same fresh name so
// sharing is preserved.
func RenameTerm(t Term, counter *Counter, seen map[string]string) Term {
	switch v := t.(type) {
	case Var:
		fresh, ok := seen[v.Name]
		if !ok {
			fresh = counter.Next()
			seen[v.Name] = fresh
		}
		return Var{Name: fresh}
	case Compound:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = RenameTerm(a, counter, seen)
		}
		return Compound{Functor: v.Functor, Args: args}
	default:
		return t
	}
}
