// Package core holds the error types, SZS status vocabulary, and
// configuration shared by every other package in the prover: it has no
// dependents of its own, so everything else may import it freely.
package core

import "fmt"

// Kind classifies a ProverError the way §7 of the design classifies
// failures: parse/lex problems, unsupported syntax, symbol-table
// mismatches, and the outcome that is not really an error at all
// (budget exhaustion) but still needs to unwind through the same path.
type Kind int

const (
	// KindParse covers lexer/parser syntax errors.
	KindParse Kind = iota
	// KindUnsupportedConstruct covers syntax the front end recognizes
	// but the engine does not implement (e.g. higher-order operators).
	KindUnsupportedConstruct
	// KindArityMismatch covers a function/predicate symbol used with
	// two different arities, or an undeclared symbol.
	KindArityMismatch
	// KindBudgetExhausted signals the soft budget (§5) was exceeded;
	// it is reported as GaveUp, not as a crash.
	KindBudgetExhausted
	// KindInternalInvariant marks a condition that must never occur in
	// a correct implementation (non-idempotent substitution, a clause
	// with shared variables across parents, ...). Seeing one means a
	// bug in the engine, not bad input.
	KindInternalInvariant
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindUnsupportedConstruct:
		return "unsupported construct"
	case KindArityMismatch:
		return "arity mismatch"
	case KindBudgetExhausted:
		return "budget exhausted"
	case KindInternalInvariant:
		return "internal invariant violation"
	default:
		return "unknown error"
	}
}

// ProverError is the one error type the engine raises at its boundaries.
// It mirrors the teacher repo's LogicError (System/Op/Message) with an
// added Kind so callers can branch on failure class with errors.As
// instead of string matching.
type ProverError struct {
	Kind    Kind
	System  string // the component raising the error, e.g. "tptp", "saturate"
	Op      string
	Message string
	Line    int // 0 if not applicable
	Column  int
}

func (e *ProverError) Error() string {
	loc := ""
	if e.Line > 0 {
		loc = fmt.Sprintf(" at %d:%d", e.Line, e.Column)
	}
	if e.System != "" {
		return fmt.Sprintf("%s in %s.%s%s: %s", e.Kind, e.System, e.Op, loc, e.Message)
	}
	return fmt.Sprintf("%s in %s%s: %s", e.Kind, e.Op, loc, e.Message)
}

// NewProverError builds a ProverError without a source position.
func NewProverError(kind Kind, system, op, message string) *ProverError {
	return &ProverError{Kind: kind, System: system, Op: op, Message: message}
}

// NewParseError builds a KindParse error with a source position.
func NewParseError(op, message string, line, column int) *ProverError {
	return &ProverError{Kind: KindParse, System: "tptp", Op: op, Message: message, Line: line, Column: column}
}
