// Package ast defines the abstract syntax tree produced by the parser: a closed
// family of expressions, function prototypes and functions.
package ast

import "fmt"

type Node interface {
	fmt.Stringer
	astNode()
}

// Expr is implemented only by the expression nodes of this package, so a type
// switch over NumberExpr, VarExpr, BinaryExpr and CallExpr is exhaustive.
type Expr interface {
	Node
	exprNode()
}

// Inspect traverses expr in depth-first order: it calls f(expr) and, if f
// returns true, inspects each child of expr in source order.
func Inspect(expr Expr, f func(Expr) bool) {
	if expr == nil || !f(expr) {
		return
	}

	switch e := expr.(type) {
	case *NumberExpr, *VarExpr:
	case *BinaryExpr:
		Inspect(e.Left, f)
		Inspect(e.Right, f)
	case *CallExpr:
		for _, arg := range e.Args {
			Inspect(arg, f)
		}
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected expression %T", expr))
	}
}
