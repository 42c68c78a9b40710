// Command atprove is the §6 CLI surface over the saturation engine: a
// single positional problem file plus the flag set that configures
// equality axioms, subsumption, literal selection, the clause
// heuristic, set-of-support, and the soft budget, reporting its result
// as an SZS status line the way every TPTP-ecosystem prover does.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/model"
	"github.com/xDarkicex/atp/saturate"
	"github.com/xDarkicex/atp/tptp"
)

type flags struct {
	equality    bool
	clausify    bool
	forward     bool
	backward    bool
	positive    bool
	heuristic   string
	selection   string
	sos         bool
	maxWallTime time.Duration
	maxClauses  int
	includePath []string
	verbosity   string
	printModel  bool
	modelSize   int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "atprove <problem-file>",
		Short: "Saturation-based theorem prover for first-order logic with equality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f)
		},
	}

	flagset := cmd.Flags()
	flagset.BoolVarP(&f.equality, "equality", "t", false, "synthesize equality axioms before saturation")
	flagset.BoolVarP(&f.clausify, "clausify", "i", false, "treat input as fof() and clausify it")
	flagset.BoolVarP(&f.forward, "forward-subsumption", "f", false, "enable forward subsumption")
	flagset.BoolVarP(&f.backward, "backward-subsumption", "b", false, "enable backward subsumption")
	flagset.BoolVarP(&f.positive, "positive-selection", "p", false, "select positive literals instead of negative")
	flagset.StringVarP(&f.heuristic, "heuristic", "H", "FIFO", "clause evaluation heuristic: FIFO, SymbolCount, PickGiven5")
	flagset.StringVarP(&f.selection, "selection", "n", "none", "literal selection policy: none, first, smallest, largest")
	flagset.BoolVarP(&f.sos, "set-of-support", "S", false, "restrict resolution to set-of-support clauses")
	flagset.DurationVar(&f.maxWallTime, "max-time", 0, "soft wall-clock budget (0 = unbounded)")
	flagset.IntVar(&f.maxClauses, "max-clauses", 0, "soft clause-count budget (0 = unbounded)")
	flagset.StringSliceVar(&f.includePath, "include-path", nil, "search path for include() directives")
	flagset.StringVarP(&f.verbosity, "verbosity", "v", "warn", "log level: trace, debug, info, warn, error")
	flagset.BoolVar(&f.printModel, "model", false, "on Satisfiable/CounterSatisfiable, search for and print a finite model")
	flagset.IntVar(&f.modelSize, "model-size", 2, "domain size to search for -model")

	return cmd
}

func run(path string, f *flags) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "atprove",
		Level: hclog.LevelFromString(f.verbosity),
	})

	selection, ok := core.ParseSelection(f.selection)
	if !ok {
		return fmt.Errorf("unknown selection policy %q", f.selection)
	}
	heuristicVal, ok := core.ParseHeuristic(f.heuristic)
	if !ok {
		return fmt.Errorf("unknown heuristic %q", f.heuristic)
	}

	cfg := core.Config{
		UseEqualityAxioms:   f.equality,
		Clausify:            f.clausify,
		ForwardSubsumption:  f.forward,
		BackwardSubsumption: f.backward,
		PositiveSelection:   f.positive,
		Heuristic:           heuristicVal,
		Selection:           selection,
		UseSetOfSupport:     f.sos,
		MaxWallTime:         f.maxWallTime,
		MaxClauses:          f.maxClauses,
		IncludePaths:        f.includePath,
	}

	clauses, isFOF, err := tptp.LoadProblem(path, f.includePath, cfg.Clausify)
	if err != nil {
		return err
	}
	dialect := core.DialectCNF
	if isFOF {
		dialect = core.DialectFOF
	}

	engine := saturate.NewEngine(cfg, logger)
	result := engine.Run(clauses, dialect)

	fmt.Println(result.Status.SZSLine())
	if len(result.Refutation) > 0 {
		fmt.Println("SZS output start CNFRefutation")
		for _, c := range result.Refutation {
			fmt.Printf("%d. %s [%s]\n", c.ID, c, c.Inference)
		}
		fmt.Println("SZS output end CNFRefutation")
	}

	if f.printModel && (result.Status == core.StatusSatisfiable || result.Status == core.StatusCounterSatisfiable) {
		printModel(result.Saturated, f.modelSize)
	}

	os.Exit(result.Status.ExitCode())
	return nil
}

func printModel(saturated []*clause.Clause, modelSize int) {
	domain := make(model.Domain, modelSize)
	for i := range domain {
		domain[i] = fmt.Sprintf("d%d", i)
	}
	m, ok, err := model.FindModel(saturated, domain)
	if err != nil {
		fmt.Printf("%% model search skipped: %v\n", err)
		return
	}
	if !ok {
		fmt.Printf("%% no model of domain size %d found\n", modelSize)
		return
	}
	fmt.Println("% finite model:")
	for pred, table := range m.PredTable {
		for args, holds := range table {
			if holds {
				fmt.Printf("%%   %s(%s)\n", pred, args)
			}
		}
	}
}
