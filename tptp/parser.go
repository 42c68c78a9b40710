package tptp

import (
	"fmt"

	"github.com/xDarkicex/atp/clause"
	"github.com/xDarkicex/atp/core"
	"github.com/xDarkicex/atp/term"
)

// Parser is a hand-rolled recursive-descent parser over a token slice,
// following the shape of the teacher's classical/parser.go: a flat
// token buffer, a cursor, and one method per grammar production.
type Parser struct {
	tokens []Token
	pos    int
	system string // "tptp", used as ProverError.System
}

// NewParser builds a Parser over tokens produced by Lexer.Lex.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, system: "tptp"}
}

// ParseFile parses a whole TPTP source into its annotated-formula units
// and include directives, in file order.
func ParseFile(src string) ([]Unit, []Include, error) {
	toks := NewLexer(src).Lex()
	p := NewParser(toks)
	var units []Unit
	var includes []Include
	for !p.atEOF() {
		if p.peek().Type == TokError {
			return nil, nil, p.errorAt("unexpected character "+quote(p.peek().Value), p.peek())
		}
		if p.peek().Type == TokInclude {
			inc, err := p.parseInclude()
			if err != nil {
				return nil, nil, err
			}
			includes = append(includes, inc)
			continue
		}
		u, err := p.parseAnnotatedFormula()
		if err != nil {
			return nil, nil, err
		}
		units = append(units, u)
	}
	return units, includes, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return Token{Type: TokEOF}
	}
	return p.tokens[i]
}

func (p *Parser) atEOF() bool { return p.peek().Type == TokEOF }

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, p.errorAt(fmt.Sprintf("expected %s, got %s %s", tt, p.peek().Type, quote(p.peek().Value)), p.peek())
	}
	return p.advance(), nil
}

func (p *Parser) errorAt(msg string, t Token) error {
	return core.NewParseError("parse", msg, t.Line, t.Column)
}

func (p *Parser) parseInclude() (Include, error) {
	var inc Include
	tok, err := p.expect(TokInclude)
	if err != nil {
		return inc, err
	}
	inc.Line = tok.Line
	if _, err := p.expect(TokLParen); err != nil {
		return inc, err
	}
	file, err := p.expect(TokAtomName)
	if err != nil {
		return inc, err
	}
	inc.File = file.Value
	if p.peek().Type == TokComma {
		p.advance()
		if _, err := p.expect(TokLBracket); err != nil {
			return inc, err
		}
		for {
			n, err := p.expect(TokAtomName)
			if err != nil {
				return inc, err
			}
			inc.Names = append(inc.Names, n.Value)
			if p.peek().Type == TokComma {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(TokRBracket); err != nil {
			return inc, err
		}
	}
	if _, err := p.expect(TokRParen); err != nil {
		return inc, err
	}
	if _, err := p.expect(TokDot); err != nil {
		return inc, err
	}
	return inc, nil
}

func (p *Parser) parseAnnotatedFormula() (Unit, error) {
	var u Unit
	kind := p.peek()
	switch kind.Type {
	case TokCNF:
		u.IsCNF = true
	case TokFOF:
		u.IsCNF = false
	default:
		return u, p.errorAt("expected cnf( or fof(, got "+quote(kind.Value), kind)
	}
	u.Line = kind.Line
	p.advance()
	if _, err := p.expect(TokLParen); err != nil {
		return u, err
	}
	name, err := p.expect(TokAtomName)
	if err != nil {
		return u, err
	}
	u.Name = name.Value
	if _, err := p.expect(TokComma); err != nil {
		return u, err
	}
	role, err := p.expect(TokAtomName)
	if err != nil {
		return u, err
	}
	u.Role = Role(role.Value)
	if _, err := p.expect(TokComma); err != nil {
		return u, err
	}

	if u.IsCNF {
		if _, err := p.expect(TokLParen); err != nil {
			return u, err
		}
		lits, err := p.parseDisjunction()
		if err != nil {
			return u, err
		}
		for _, l := range lits {
			u.Literal = append(u.Literal, l.atom)
			u.Negated = append(u.Negated, l.negated)
		}
		if _, err := p.expect(TokRParen); err != nil {
			return u, err
		}
	} else {
		f, err := p.parseFormula()
		if err != nil {
			return u, err
		}
		u.Formula = f
	}

	if _, err := p.expect(TokRParen); err != nil {
		return u, err
	}
	if _, err := p.expect(TokDot); err != nil {
		return u, err
	}
	return u, nil
}

type signedAtom struct {
	atom    Atom
	negated bool
}

// parseDisjunction parses a flat "|"-separated list of (possibly
// negated) literals, the cnf() body grammar, stopping at the matching
// ")".
func (p *Parser) parseDisjunction() ([]signedAtom, error) {
	var out []signedAtom
	for {
		negated := false
		if p.peek().Type == TokNot {
			p.advance()
			negated = true
		}
		a, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		out = append(out, signedAtom{atom: a, negated: negated})
		if p.peek().Type == TokOr {
			p.advance()
			continue
		}
		break
	}
	return out, nil
}

// parseFormula is the fof() top-level entry point: <=>/<~> is the
// loosest-binding connective.
func (p *Parser) parseFormula() (Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	switch p.peek().Type {
	case TokIff:
		p.advance()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Iff{Left: left, Right: right}, nil
	case TokXor:
		p.advance()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Xor{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseImplies() (Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokImplies {
		p.advance()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseOr() (Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	args := []Formula{left}
	for p.peek().Type == TokOr {
		p.advance()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return Or{Args: args}, nil
}

func (p *Parser) parseAnd() (Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	args := []Formula{left}
	for p.peek().Type == TokAnd {
		p.advance()
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return And{Args: args}, nil
}

func (p *Parser) parseUnary() (Formula, error) {
	switch p.peek().Type {
	case TokNot:
		p.advance()
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{Sub: sub}, nil
	case TokForall, TokExists:
		return p.parseQuantified()
	case TokLParen:
		p.advance()
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return f, nil
	default:
		a, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

func (p *Parser) parseQuantified() (Formula, error) {
	quant := p.advance()
	if _, err := p.expect(TokLBracket); err != nil {
		return nil, err
	}
	var vars []string
	for {
		v, err := p.expect(TokVar)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v.Value)
		if p.peek().Type == TokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(TokRBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokColon); err != nil {
		return nil, err
	}
	sub, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if quant.Type == TokForall {
		return Forall{Vars: vars, Sub: sub}, nil
	}
	return Exists{Vars: vars, Sub: sub}, nil
}

// parseAtom parses a predicate application or an equality/disequality
// between two terms.
func (p *Parser) parseAtom() (Atom, error) {
	t1, err := p.parseTerm()
	if err != nil {
		return Atom{}, err
	}
	switch p.peek().Type {
	case TokEq:
		p.advance()
		t2, err := p.parseTerm()
		if err != nil {
			return Atom{}, err
		}
		return Atom{Predicate: clause.EqualityPredicate, Args: []term.Term{t1, t2}}, nil
	case TokNeq:
		p.advance()
		t2, err := p.parseTerm()
		if err != nil {
			return Atom{}, err
		}
		// Represented as an equality atom with Neq set; the extra
		// negation is folded in once, when the atom becomes a clause
		// literal (ClauseFromCNFUnit, cnfUnitFormula, toLiterals).
		return Atom{Predicate: clause.EqualityPredicate, Args: []term.Term{t1, t2}, Neq: true}, nil
	}
	c, ok := t1.(term.Compound)
	if !ok {
		return Atom{}, p.errorAt("expected predicate application, got a variable", p.peekAt(-1))
	}
	return Atom{Predicate: c.Functor, Args: c.Args}, nil
}

// parseTerm parses a variable or a (possibly 0-ary) function
// application.
func (p *Parser) parseTerm() (term.Term, error) {
	tok := p.peek()
	switch tok.Type {
	case TokVar:
		p.advance()
		return term.Var{Name: tok.Value}, nil
	case TokAtomName:
		p.advance()
		if p.peek().Type == TokLParen {
			p.advance()
			args, err := p.parseTermList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokRParen); err != nil {
				return nil, err
			}
			return term.App(tok.Value, args...), nil
		}
		return term.Const(tok.Value), nil
	case TokNumber:
		p.advance()
		return term.Const(tok.Value), nil
	default:
		return nil, p.errorAt("expected a term, got "+quote(tok.Value), tok)
	}
}

func (p *Parser) parseTermList() ([]term.Term, error) {
	var args []term.Term
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	args = append(args, t)
	for p.peek().Type == TokComma {
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	return args, nil
}
