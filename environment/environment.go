// Package environment implements the scope chain the evaluator binds names
// into: a local table plus an optional link to an enclosing environment.
package environment

import "github.com/rtlang/lyth/object"

// Environment is a name-to-value mapping with an optional outer link,
// forming a tree of lexical scopes rooted at the global environment.
//
// Function calls create a new Environment enclosing the function's
// *captured* environment, never the caller's — that's what makes this
// static rather than dynamic scoping, and what makes closures work: the
// environment a FunctionLiteral captured outlives the call that created it
// for as long as some Function value still references it.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a global environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates an environment that extends outer: lookups that miss
// locally fall through to outer, but bindings made here never affect it.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then recursively in outer scopes.
// The bool result is false only when the name is bound nowhere in the chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment only, overwriting any existing
// local binding. It never reaches into an outer scope: there is no
// assignment operator in the language, only `let`, so every binding is a
// fresh declaration in the current scope. It returns the binding name held
// previously in this environment, if any.
func (e *Environment) Set(name string, val object.Object) (object.Object, bool) {
	prev, existed := e.store[name]
	e.store[name] = val
	return prev, existed
}
