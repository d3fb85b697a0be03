// Package function defines the closure value produced by a FunctionLiteral.
// It is kept separate from package object (which the AST's Value model maps
// to most directly) because a closure needs both the AST shape of its body
// and a live Environment, and object <-> environment must not import each
// other: object.Object is what environment stores, so environment depends
// on object, not the reverse. function depends on both.
package function

import (
	"fmt"
	"strings"

	"github.com/rtlang/lyth/ast"
	"github.com/rtlang/lyth/environment"
	"github.com/rtlang/lyth/object"
)

// Function is a closure: the parameter list and body from the
// FunctionLiteral that created it, plus the environment active at that
// point. Calling it extends Env, never the caller's environment — that is
// what makes the scoping lexical rather than dynamic, and what lets
// closures outlive the call that created them.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) GetType() object.ObjectType { return object.FunctionObj }

func (f *Function) ToString() string {
	return fmt.Sprintf("func(%s)", f.paramList())
}

func (f *Function) ToObject() string {
	return fmt.Sprintf("<func(%s)>", f.paramList())
}

func (f *Function) paramList() string {
	names := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		names[i] = p.Value
	}
	return strings.Join(names, ", ")
}
