package parser

import (
	"fmt"

	"github.com/HicaroD/kvikk/internal/ast"
	"github.com/HicaroD/kvikk/internal/diagnostics"
	"github.com/HicaroD/kvikk/internal/grammar"
	"github.com/HicaroD/kvikk/internal/lexer"
	"github.com/HicaroD/kvikk/internal/lexer/token"
)

const DEFAULT_MAX_DEPTH = 256

// Parser turns one line of input into functions. It reads a single token of
// lookahead at a time and keeps the state of the line being parsed, so one
// Parser must not be used by two goroutines at once.
//
// Every parse function returns nil on failure after reporting exactly one
// diagnostic. Callers hand the nil upwards; only Parse recovers from it.
type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector

	tok *token.Token

	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth bounds how deeply expressions may nest, parentheses and call
// arguments included.
func WithMaxDepth(maxDepth int) Option {
	return func(p *Parser) {
		if maxDepth > 0 {
			p.maxDepth = maxDepth
		}
	}
}

// WithFilename sets the name shown in token positions.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.lex.Filename = filename
	}
}

func New(collector *diagnostics.Collector, opts ...Option) *Parser {
	parser := new(Parser)
	parser.lex = lexer.New("")
	parser.collector = collector
	parser.maxDepth = DEFAULT_MAX_DEPTH
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// SetLine sets the line number reported in the positions of the next parse.
func (p *Parser) SetLine(line int) {
	p.lex.Line = line
}

// Parse parses every definition and top-level expression in input, in
// order. A construct that fails to parse costs one diagnostic and one
// skipped token, and parsing resumes with the next token.
func (p *Parser) Parse(input string) []*ast.Function {
	p.lex.SetInput(input)
	p.depth = 0
	p.next()

	var functions []*ast.Function

	for p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.SEMICOLON:
			p.next()
		case token.DEF:
			fn := p.parseDefinition()
			if fn == nil {
				p.next()
				continue
			}
			p.collector.ReportAndSave(diagnostics.Note("Parsed a function definition"))
			functions = append(functions, fn)
		case token.UNKNOWN:
			p.errorf("Unknown or unexpected token '%s'", p.tok.Name())
			p.next()
		default:
			fn := p.parseTopLevelExpr()
			if fn == nil {
				p.next()
				continue
			}
			p.collector.ReportAndSave(diagnostics.Note("Parsed anonymous expression"))
			functions = append(functions, fn)
		}
	}

	return functions
}

func (p *Parser) next() {
	p.tok = p.lex.Next()
}

func (p *Parser) parseDefinition() *ast.Function {
	p.next() // def

	proto := p.parsePrototype()
	if proto == nil {
		return nil
	}

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	return &ast.Function{Proto: proto, Body: body}
}

func (p *Parser) parseTopLevelExpr() *ast.Function {
	body := p.parseExpr()
	if body == nil {
		return nil
	}
	return &ast.Function{Proto: ast.NewAnonymousProto(), Body: body}
}

func (p *Parser) parsePrototype() *ast.Proto {
	if p.tok.Kind != token.ID {
		p.errorf("Expected name in function definition")
		return nil
	}
	name := p.tok.Lexeme
	p.next()

	if !p.tok.Is("(") {
		p.errorf("Expected '(' in function definition")
		return nil
	}
	p.next()

	params := []string{}
	for !p.tok.Is(")") {
		switch {
		case p.tok.Kind == token.ID:
			params = append(params, p.tok.Lexeme)
			p.next()
		case p.tok.Is(","):
			p.next()
		case p.tok.Kind == token.EOF:
			p.errorf("Expected ')' in function definition")
			return nil
		default:
			p.errorf("Unexpected token '%s' in argument list", p.tok.Name())
			return nil
		}
	}
	p.next() // )

	return &ast.Proto{Name: name, Params: params}
}

func (p *Parser) parseExpr() ast.Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	return p.parseBinaryRHS(0, lhs)
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case token.ID:
		return p.parseIdOrCall()
	case token.NUMBER:
		number := &ast.NumberExpr{Value: p.tok.Value}
		p.next()
		return number
	default:
		if p.tok.Is("(") {
			return p.parseParenExpr()
		}
		p.errorf("Unexpected token '%s'", p.tok.Name())
		return nil
	}
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.next() // (

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.tok.Is(")") {
		p.errorf("Expected ')'")
		return nil
	}
	p.next() // )

	return expr
}

func (p *Parser) parseIdOrCall() ast.Expr {
	name := p.tok.Lexeme
	p.next()

	if !p.tok.Is("(") {
		return &ast.VarExpr{Name: name}
	}
	p.next() // (

	args := []ast.Expr{}
	if !p.tok.Is(")") {
		for {
			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			args = append(args, arg)

			if p.tok.Is(")") {
				break
			}
			if !p.tok.Is(",") {
				p.errorf("Unexpected token '%s'. Expected ',' or ')'", p.tok.Name())
				return nil
			}
			p.next() // ,
		}
	}
	p.next() // )

	return &ast.CallExpr{Callee: name, Args: args}
}

// parseBinaryRHS folds every operator binding at least as tightly as minPrec
// into lhs. When the operator after the right operand binds tighter than the
// current one, that operand is first extended by a recursive call so it ends
// up deeper in the tree.
func (p *Parser) parseBinaryRHS(minPrec int, lhs ast.Expr) ast.Expr {
	for {
		prec := p.precedence()
		if prec < minPrec {
			return lhs
		}

		op := p.tok.Lexeme
		p.next()

		rhs := p.parsePrimary()
		if rhs == nil {
			return nil
		}

		if prec < p.precedence() {
			if !p.enter() {
				return nil
			}
			rhs = p.parseBinaryRHS(prec+1, rhs)
			p.leave()
			if rhs == nil {
				return nil
			}
		}

		lhs = &ast.BinaryExpr{Op: op, Left: lhs, Right: rhs}
	}
}

// precedence of the lookahead, or grammar.NOT_AN_OPERATOR
func (p *Parser) precedence() int {
	if p.tok.Kind != token.UNKNOWN {
		return grammar.NOT_AN_OPERATOR
	}
	return grammar.Precedence(p.tok.Lexeme)
}

func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		p.errorf("Expression nesting exceeds maximum depth of %d", p.maxDepth)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) errorf(format string, args ...any) {
	p.collector.ReportAndSave(diagnostics.Error(fmt.Sprintf(format, args...), p.tok.Pos))
}
