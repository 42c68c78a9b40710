// Package atp is the backwards-compatible facade over the saturation
// engine: a handful of package-level convenience functions for callers
// who want "load a file, get an SZS status" without assembling an
// Engine and a Loader themselves, the same role the teacher's root
// logic.go package played over its classical/sat systems.
package atp

import (
	"github.com/hashicorp/go-hclog"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/saturate"
	"github.com/xDarkicex/atp/tptp"
)

// Prove loads path (resolving include() directives against
// searchPaths), clausifies it, and saturates it under cfg, returning
// the SZS outcome. A nil logger runs quietly.
func Prove(path string, searchPaths []string, cfg core.Config, logger hclog.Logger) (*saturate.Result, error) {
	clauses, isFOF, err := tptp.LoadProblem(path, searchPaths, cfg.Clausify)
	if err != nil {
		return nil, err
	}
	dialect := core.DialectCNF
	if isFOF {
		dialect = core.DialectFOF
	}
	engine := saturate.NewEngine(cfg, logger)
	return engine.Run(clauses, dialect), nil
}

// ProveClauses saturates an already-clausified problem (e.g. one built
// with Builder, or by a test), skipping the tptp front end entirely.
func ProveClauses(clauses []*clause.Clause, dialect core.Dialect, cfg core.Config, logger hclog.Logger) *saturate.Result {
	engine := saturate.NewEngine(cfg, logger)
	return engine.Run(clauses, dialect)
}

// NewEngine is a re-export of saturate.NewEngine, so a caller who wants
// to Run() more than once (e.g. replaying a problem under several
// heuristics) does not need to import the saturate package directly.
func NewEngine(cfg core.Config, logger hclog.Logger) *saturate.Engine {
	return saturate.NewEngine(cfg, logger)
}

// Type aliases for the vocabulary callers most often need at this
// package's boundary, mirroring the teacher's own root-package alias
// block (logic.go's type/func alias list over classical).
type (
	Status  = core.Status
	Dialect = core.Dialect
	Config  = core.Config
)

const (
	StatusUnsatisfiable      = core.StatusUnsatisfiable
	StatusSatisfiable        = core.StatusSatisfiable
	StatusTheorem            = core.StatusTheorem
	StatusCounterSatisfiable = core.StatusCounterSatisfiable
	StatusGaveUp             = core.StatusGaveUp

	DialectCNF = core.DialectCNF
	DialectFOF = core.DialectFOF
)

// DefaultConfig is a re-export of core.DefaultConfig.
func DefaultConfig() Config { return core.DefaultConfig() }
