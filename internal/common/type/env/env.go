// Released under an MIT license. See LICENSE.

// Package env provides zy's environment type: one frame in a chain of
// frames searched from the innermost outwards.
package env

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
	"github.com/michaelmacinnis/zy/internal/common/struct/hash"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

const name = "environment"

// T (env) maps names to values and refers to the enclosing env, if any.
// The enclosing env is fixed when the env is created so chains are
// never circular.
type T struct {
	previous scope.I
	*hash.T
}

type env = T

// New creates a new env enclosed by previous. A nil previous creates a
// root env.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		T:        hash.New(),
	}
}

// Child creates a new env enclosed by parent with each name in params
// bound to the value at the same position in args.
func Child(parent scope.I, params []string, args []cell.I) (scope.I, error) {
	if len(params) != len(args) {
		return nil, failure.New(
			failure.Operation,
			"expected %s, passed %d",
			validate.Count(len(params), "argument", "s"), len(args),
		)
	}

	e := New(parent)
	for i, k := range params {
		e.Define(k, args[i])
	}

	return e, nil
}

// Define associates the name k with the cell v in the env e. An existing
// binding for k in e is replaced; bindings in enclosing envs are shadowed.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && e == o
}

// Lookup retrieves the value associated with the name k in the env e or,
// failing that, the nearest enclosing env that has k.
func (e *env) Lookup(k string) (cell.I, bool) {
	for s := scope.I(e); s != nil; s = s.Enclosing() {
		o, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if v, found := o.Get(k); found {
			return v, true
		}
	}

	return nil, false
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns every name visible from the env e, innermost first.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for s := scope.I(e); s != nil; s = s.Enclosing() {
		o, ok := s.(*env)
		if !ok {
			break
		}

		for _, k := range o.Keys() {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	return names
}

// Resolve is like Lookup but returns an UndefinedVariable failure when
// k is not bound anywhere in the chain.
func (e *env) Resolve(k string) (cell.I, error) {
	v, ok := e.Lookup(k)
	if !ok {
		return nil, failure.New(failure.UndefinedVariable, "%s", k)
	}

	return v, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
