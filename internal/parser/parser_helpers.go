package parser

import (
	"github.com/HicaroD/kvikk/internal/ast"
	"github.com/HicaroD/kvikk/internal/diagnostics"
)

// NewForTest returns a parser whose collector keeps diagnostics without
// printing them.
func NewForTest(opts ...Option) (*Parser, *diagnostics.Collector) {
	collector := diagnostics.NewWithWriter(nil)
	return New(collector, opts...), collector
}

// ParseExprFrom parses input as a single expression and ignores anything left
// after it.
func ParseExprFrom(input string) (ast.Expr, *diagnostics.Collector) {
	p, collector := NewForTest()
	p.lex.SetInput(input)
	p.next()
	return p.parseExpr(), collector
}

// ParsePrototypeFrom parses input as a prototype, without the 'def' keyword.
func ParsePrototypeFrom(input string) (*ast.Proto, *diagnostics.Collector) {
	p, collector := NewForTest()
	p.lex.SetInput(input)
	p.next()
	return p.parsePrototype(), collector
}
