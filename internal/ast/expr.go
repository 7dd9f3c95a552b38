package ast

import (
	"strconv"
	"strings"
)

type NumberExpr struct {
	Value float64
}

func (number *NumberExpr) String() string {
	return strconv.FormatFloat(number.Value, 'g', -1, 64)
}
func (number *NumberExpr) astNode()  {}
func (number *NumberExpr) exprNode() {}

// VarExpr references a parameter or a defined symbol by name. Names are not
// resolved here.
type VarExpr struct {
	Name string
}

func (v *VarExpr) String() string { return v.Name }
func (v *VarExpr) astNode()       {}
func (v *VarExpr) exprNode()      {}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (binExpr *BinaryExpr) String() string {
	return "(" + binExpr.Op + " " + binExpr.Left.String() + " " + binExpr.Right.String() + ")"
}
func (binExpr *BinaryExpr) astNode()  {}
func (binExpr *BinaryExpr) exprNode() {}

type CallExpr struct {
	Callee string
	Args   []Expr
}

func (call *CallExpr) String() string {
	var b strings.Builder
	b.WriteString("(call ")
	b.WriteString(call.Callee)
	for _, arg := range call.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (call *CallExpr) astNode()  {}
func (call *CallExpr) exprNode() {}
