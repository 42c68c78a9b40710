package saturate

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/term"
)

// Engine is the single-threaded, synchronous saturation engine of §5. It
// owns the two process-wide counters (fresh variables, clause IDs) the
// design calls an "initialization contract": a fresh Engine, or a
// Reset-ed one, gives byte-identical runs for byte-identical inputs.
type Engine struct {
	Config core.Config
	Logger hclog.Logger

	counter    *term.Counter
	nextClause int
	registry   map[int]*clause.Clause

	clauses *ClauseSet
}

// NewEngine builds an Engine for cfg. A nil logger defaults to a null
// logger, the teacher's own quiet-by-default convention.
func NewEngine(cfg core.Config, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		Config:   cfg,
		Logger:   logger,
		counter:  term.NewCounter(),
		registry: make(map[int]*clause.Clause),
		clauses:  NewClauseSet(cfg.Heuristic, cfg.ForwardSubsumption, cfg.BackwardSubsumption),
	}
}

// Reset restores the engine's counters to zero, the operation a caller
// must perform between independent problem runs to keep determinism
// (§5, §8).
func (e *Engine) Reset() {
	e.counter.Reset()
	e.nextClause = 0
	e.registry = make(map[int]*clause.Clause)
	e.clauses = NewClauseSet(e.Config.Heuristic, e.Config.ForwardSubsumption, e.Config.BackwardSubsumption)
}

func (e *Engine) freshID() int {
	e.nextClause++
	return e.nextClause
}

// Stats summarizes a saturation run for reporting alongside the SZS
// status line.
type Stats struct {
	Generated  int
	Discarded  int
	Iterations int
	Elapsed    time.Duration
}

// Result is the outcome of Run: the SZS status, the refutation's parent
// chain in proof order when found, and run statistics.
type Result struct {
	Status     core.Status
	Refutation []*clause.Clause
	Saturated  []*clause.Clause
	Stats      Stats
}

func logField(name string, c *clause.Clause) []interface{} {
	return []interface{}{name + "_id", c.ID, name, c.String()}
}
