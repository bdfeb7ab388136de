// Released under an MIT license. See LICENSE.

// Package task provides zy's evaluator: a recursive walk over expression
// trees with lexically scoped closures and five special forms.
package task

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
	"github.com/michaelmacinnis/zy/internal/common/type/env"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/common/type/sym"
)

// DefaultLimit is the default maximum evaluation depth.
const DefaultLimit = 10000

// T (task) evaluates expressions. A task is not safe for concurrent use.
type T struct {
	depth int
	limit int
}

type task = T

// New creates a task that fails cleanly when evaluation nests deeper than
// limit. A limit less than one means DefaultLimit.
func New(limit int) *T {
	if limit < 1 {
		limit = DefaultLimit
	}

	return &T{limit: limit}
}

// Eval evaluates the expression c in the scope s. A nil cell with a nil
// error means c produced no value.
func (t *task) Eval(c cell.I, s scope.I) (cell.I, error) {
	t.depth = 0

	return t.eval(c, s)
}

// Apply calls the closure or builtin f with args.
func (t *task) Apply(f cell.I, args []cell.I) (cell.I, error) {
	switch f := f.(type) {
	case *Builtin:
		return f.Call(args)
	case *Closure:
		e, err := env.Child(f.Scope, f.Params, args)
		if err != nil {
			return nil, err
		}

		return t.eval(f.Body, e)
	}

	return nil, failure.New(failure.Operation, "%s is not callable", describe(f))
}

func (t *task) eval(c cell.I, s scope.I) (cell.I, error) {
	t.depth++
	defer func() { t.depth-- }()

	if t.depth > t.limit {
		return nil, failure.New(failure.Operation, "maximum recursion depth exceeded")
	}

	if sym.Is(c) {
		return lookup(c, s)
	}

	if !list.Is(c) {
		return c, nil
	}

	operands := list.To(c).Elements()
	if len(operands) == 0 {
		return c, nil
	}

	if !sym.Is(operands[0]) {
		return t.application(operands, s)
	}

	switch sym.To(operands[0]).String() {
	case Conditional:
		return t.conditional(operands[1:], s)
	case Define:
		return t.define(operands[1:], s)
	case Foreach:
		return t.foreach(operands[1:], s)
	case Lambda:
		return t.lambda(operands[1:], s)
	case MultiAssign:
		return t.multiAssign(operands[1:], s)
	}

	return t.application(operands, s)
}

func (t *task) application(operands []cell.I, s scope.I) (cell.I, error) {
	f, err := t.eval(operands[0], s)
	if err != nil {
		return nil, err
	}

	args, err := t.values(operands[1:], s)
	if err != nil {
		return nil, err
	}

	return t.Apply(f, args)
}

// values evaluates each expression in cs, left to right, in the scope s.
func (t *task) values(cs []cell.I, s scope.I) ([]cell.I, error) {
	vs := make([]cell.I, len(cs))

	for i, c := range cs {
		v, err := t.eval(c, s)
		if err != nil {
			return nil, err
		}

		vs[i] = null.Or(v)
	}

	return vs, nil
}

func describe(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	return c.Name()
}

func lookup(c cell.I, s scope.I) (cell.I, error) {
	k := sym.To(c).String()

	v, ok := s.Lookup(k)
	if ok {
		return v, nil
	}

	if p, ok := c.(*sym.Plus); ok {
		return nil, failure.At(p.Source(), failure.UndefinedVariable, "%s", k)
	}

	return nil, failure.New(failure.UndefinedVariable, "%s", k)
}
