// Package model implements a finite ground Herbrand interpretation:
// a small domain plus function/predicate tables, used to spot-check
// inference soundness (§8) and to back the -model CLI flag (§E) that
// prints a finite model found by FindModel when saturation reaches
// Satisfiable or CounterSatisfiable. It generalizes the teacher's
// classical.GenerateTruthTable — enumerate every assignment, evaluate,
// report — from boolean variables to domain-valued first-order
// variables ranging over a finite Domain.
package model

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/term"
)

// Domain is a finite, named set of Herbrand-model elements, indexed
// 0..len(Domain)-1.
type Domain []string

// Interpretation assigns a meaning to every function and predicate
// symbol the formula set uses, over a finite Domain: FuncTable maps a
// function symbol to a table from argument-index-tuples to a result
// index (constants are the 0-ary case, a table with one entry), and
// PredTable maps a predicate symbol to the set of argument-index-tuples
// it holds for.
type Interpretation struct {
	Domain    Domain
	FuncTable map[string]map[string]int
	PredTable map[string]map[string]bool
}

// NewInterpretation builds an empty interpretation over domain.
func NewInterpretation(domain Domain) *Interpretation {
	return &Interpretation{
		Domain:    domain,
		FuncTable: map[string]map[string]int{},
		PredTable: map[string]map[string]bool{},
	}
}

// SetFunc defines fn(args...) = result.
func (m *Interpretation) SetFunc(fn string, args []int, result int) {
	if m.FuncTable[fn] == nil {
		m.FuncTable[fn] = map[string]int{}
	}
	m.FuncTable[fn][key(args)] = result
}

// SetPred defines whether pred(args...) holds.
func (m *Interpretation) SetPred(pred string, args []int, holds bool) {
	if m.PredTable[pred] == nil {
		m.PredTable[pred] = map[string]bool{}
	}
	m.PredTable[pred][key(args)] = holds
}

func key(args []int) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%d", a)
	}
	return strings.Join(parts, ",")
}

// Assignment maps clause-local variable names to domain-element
// indices.
type Assignment map[string]int

// evalTerm resolves t to a domain-element index under assignment,
// recursing through function applications; an unset function entry
// defaults to domain element 0, the same "total by convention" stance
// the teacher's BitwiseInt takes toward out-of-range bit positions.
func (m *Interpretation) evalTerm(t term.Term, a Assignment) int {
	switch v := t.(type) {
	case term.Var:
		if idx, ok := a[v.Name]; ok {
			return idx
		}
		return 0
	case term.Compound:
		if len(v.Args) == 0 {
			if idx, ok := m.FuncTable[v.Functor][""]; ok {
				return idx
			}
			return 0
		}
		args := make([]int, len(v.Args))
		for i, arg := range v.Args {
			args[i] = m.evalTerm(arg, a)
		}
		if idx, ok := m.FuncTable[v.Functor][key(args)]; ok {
			return idx
		}
		return 0
	default:
		return 0
	}
}

// EvalLiteral evaluates l under assignment a.
func (m *Interpretation) EvalLiteral(l clause.Literal, a Assignment) bool {
	args := make([]int, len(l.Args))
	for i, t := range l.Args {
		args[i] = m.evalTerm(t, a)
	}
	var atomHolds bool
	if l.IsEquality() && len(args) == 2 {
		atomHolds = args[0] == args[1]
	} else {
		atomHolds = m.PredTable[l.Predicate][key(args)]
	}
	if l.Positive {
		return atomHolds
	}
	return !atomHolds
}

// EvalClause evaluates whether c holds (some literal is true) under a.
func (m *Interpretation) EvalClause(c *clause.Clause, a Assignment) bool {
	for _, l := range c.Literals {
		if m.EvalLiteral(l, a) {
			return true
		}
	}
	return false
}
