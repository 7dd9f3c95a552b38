// Package testutil builds AST values for tests.
package testutil

import (
	"strings"

	"github.com/HicaroD/kvikk/internal/ast"
	"github.com/HicaroD/kvikk/internal/diagnostics"
)

func NewNumber(value float64) ast.Expr {
	return &ast.NumberExpr{Value: value}
}

func NewVar(name string) ast.Expr {
	return &ast.VarExpr{Name: name}
}

func NewBinExpr(op string, left, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

func NewCall(callee string, args ...ast.Expr) ast.Expr {
	return &ast.CallExpr{Callee: callee, Args: args}
}

func NewFunction(name string, params []string, body ast.Expr) *ast.Function {
	return &ast.Function{Proto: &ast.Proto{Name: name, Params: params}, Body: body}
}

func NewAnonymousFunction(body ast.Expr) *ast.Function {
	return &ast.Function{Proto: ast.NewAnonymousProto(), Body: body}
}

// Messages returns the message of every diagnostic saved by collector.
func Messages(collector *diagnostics.Collector) []string {
	var msgs []string
	for _, diag := range collector.Diags {
		msgs = append(msgs, diag.Message)
	}
	return msgs
}

func ContainsDiag(collector *diagnostics.Collector, substr string) bool {
	for _, diag := range collector.Diags {
		if strings.Contains(diag.Message, substr) {
			return true
		}
	}
	return false
}
