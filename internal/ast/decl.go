package ast

import (
	"fmt"
	"strings"
)

// Name of the prototype synthesized for a bare top-level expression.
const ANONYMOUS_FN_NAME = "__proto"

type Proto struct {
	Name   string
	Params []string
}

func NewAnonymousProto() *Proto {
	return &Proto{Name: ANONYMOUS_FN_NAME, Params: []string{}}
}

func (proto *Proto) String() string {
	return fmt.Sprintf("%s (%s)", proto.Name, strings.Join(proto.Params, " "))
}
func (proto *Proto) astNode() {}

// Function is what the parser produces for every top-level construct, named
// definition and bare expression alike.
type Function struct {
	Proto *Proto
	Body  Expr
}

func (fn *Function) IsAnonymous() bool {
	return fn.Proto.Name == ANONYMOUS_FN_NAME
}

func (fn *Function) String() string {
	if fn.IsAnonymous() {
		return "(expr " + fn.Body.String() + ")"
	}
	return "(def " + fn.Proto.String() + " " + fn.Body.String() + ")"
}
func (fn *Function) astNode() {}
