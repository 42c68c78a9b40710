package atp

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/saturate"
)

// Trial names one (Config, problem) pairing a Benchmark run will time,
// the same Name/Func-record shape the teacher's own Benchmark used for
// boolean operations, generalized to a saturation run.
type Trial struct {
	Name    string
	Clauses []*clause.Clause
	Dialect core.Dialect
	Config  core.Config
}

// TrialResult pairs a Trial's outcome with how long it took, so callers
// comparing heuristics (§4.5/§9's FIFO vs. SymbolCount vs. PickGiven5
// question) can see both the SZS status and the wall-clock cost.
type TrialResult struct {
	Name    string
	Result  *saturate.Result
	Elapsed time.Duration
}

// Benchmark runs a set of Trials and collects their results, the
// saturation-engine counterpart to the teacher's boolean-operation
// Benchmark/Operation pair.
type Benchmark struct {
	trials  []Trial
	Results []TrialResult
}

// NewBenchmark returns an empty Benchmark.
func NewBenchmark() *Benchmark {
	return &Benchmark{}
}

// Add registers a Trial to run when Run is called.
func (b *Benchmark) Add(t Trial) {
	b.trials = append(b.trials, t)
}

// Run executes every registered Trial in order against a fresh Engine
// apiece (so one heuristic's clause IDs never leak into the next) and
// records its SZS result and elapsed time.
func (b *Benchmark) Run() {
	b.Results = make([]TrialResult, len(b.trials))
	for i, t := range b.trials {
		engine := saturate.NewEngine(t.Config, hclog.NewNullLogger())
		start := time.Now()
		result := engine.Run(t.Clauses, t.Dialect)
		b.Results[i] = TrialResult{Name: t.Name, Result: result, Elapsed: time.Since(start)}
	}
}
