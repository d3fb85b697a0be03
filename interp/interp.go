// Package interp is the single collaborator boundary between the language
// core (token, lexer, ast, parser, object, environment, function, eval) and
// its external callers (the REPL and the cmd/lyth binary). It wires
// lexing, parsing, and evaluation into one call and decides what a caller
// gets back: a value, or the accumulated diagnostics.
package interp

import (
	"github.com/rtlang/lyth/environment"
	"github.com/rtlang/lyth/eval"
	"github.com/rtlang/lyth/object"
	"github.com/rtlang/lyth/parser"
)

// Session holds the environment a sequence of Interpret calls share, so a
// REPL can bind a name in one line and read it back in the next.
type Session struct {
	env *environment.Environment
}

// NewSession creates a Session with a fresh global environment.
func NewSession() *Session {
	return &Session{env: environment.New()}
}

// Run parses and evaluates source against the session's environment.
// Parse errors are returned as-is and never reach the evaluator; an
// evaluation error yields no value (a nil object.Object) and its message
// in the second return value.
func (s *Session) Run(source string) (object.Object, []string) {
	return interpret(source, s.env)
}

// Interpret runs source once against a throwaway global environment. It is
// the one-shot form used for file execution and tests; callers that need
// bindings to persist across multiple calls should use a Session instead.
func Interpret(source string) (object.Object, []string) {
	return interpret(source, environment.New())
}

func interpret(source string, env *environment.Environment) (object.Object, []string) {
	p := parser.New(source)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs
	}

	result := eval.Eval(program, env)
	if object.IsError(result) {
		return nil, []string{result.ToString()}
	}

	return result, nil
}
