// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
	"github.com/michaelmacinnis/zy/internal/common/interface/sequence"
	"github.com/michaelmacinnis/zy/internal/common/interface/truth"
	"github.com/michaelmacinnis/zy/internal/common/type/env"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/common/type/sym"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

// Special form keywords. A list whose head is one of these symbols is not
// a function application.
const (
	Conditional = "?"
	Define      = "->"
	Foreach     = "*>"
	Lambda      = "@"
	MultiAssign = ",->"
)

// Keywords returns the special form keywords.
func Keywords() []string {
	return []string{Conditional, Define, MultiAssign, Lambda, Foreach}
}

// (? test if-branch else-branch)
func (t *task) conditional(operands []cell.I, s scope.I) (cell.I, error) {
	if err := arity(Conditional, operands, 3); err != nil {
		return nil, err
	}

	v, err := t.eval(operands[0], s)
	if err != nil {
		return nil, err
	}

	if truth.Value(v) {
		return t.eval(operands[1], s)
	}

	return t.eval(operands[2], s)
}

// (-> name expr)
func (t *task) define(operands []cell.I, s scope.I) (cell.I, error) {
	if err := arity(Define, operands, 2); err != nil {
		return nil, err
	}

	k, err := name(Define, operands[0])
	if err != nil {
		return nil, err
	}

	v, err := t.eval(operands[1], s)
	if err != nil {
		return nil, err
	}

	s.Define(k, null.Or(v))

	return nil, nil
}

// (*> var list-expr body result-expr)
func (t *task) foreach(operands []cell.I, s scope.I) (cell.I, error) {
	if err := arity(Foreach, operands, 4); err != nil {
		return nil, err
	}

	k, err := name(Foreach, operands[0])
	if err != nil {
		return nil, err
	}

	v, err := t.eval(operands[1], s)
	if err != nil {
		return nil, err
	}

	if !sequence.Is(v) {
		return nil, failure.New(failure.Operation, "%s: %s is not a sequence", Foreach, describe(v))
	}

	// Each iteration's scope encloses the next so that definitions
	// made by the body are visible to later iterations and the result.
	for _, e := range sequence.Elements(v) {
		s = env.New(s)
		s.Define(k, e)

		_, err = t.eval(operands[2], s)
		if err != nil {
			return nil, err
		}
	}

	return t.eval(operands[3], s)
}

// (@ (params) body)
func (t *task) lambda(operands []cell.I, s scope.I) (cell.I, error) {
	if err := arity(Lambda, operands, 2); err != nil {
		return nil, err
	}

	if !list.Is(operands[0]) {
		return nil, failure.New(
			failure.Operation, "%s: expected a parameter list, got %s",
			Lambda, literal.String(operands[0]),
		)
	}

	ps := list.To(operands[0]).Elements()

	params := make([]string, len(ps))
	for i, p := range ps {
		k, err := name(Lambda, p)
		if err != nil {
			return nil, err
		}

		params[i] = k
	}

	return &Closure{Body: operands[1], Params: params, Scope: s}, nil
}

// (,-> n1 n2 ... v1 v2 ...)
func (t *task) multiAssign(operands []cell.I, s scope.I) (cell.I, error) {
	half := len(operands) / 2
	names, exprs := operands[:half], operands[half:]

	if len(names) != len(exprs) {
		return nil, failure.New(
			failure.CountMismatch, "%s: %s but %s",
			MultiAssign,
			validate.Count(len(names), "name", "s"),
			validate.Count(len(exprs), "value", "s"),
		)
	}

	ks := make([]string, len(names))
	for i, n := range names {
		k, err := name(MultiAssign, n)
		if err != nil {
			return nil, err
		}

		ks[i] = k
	}

	// Every value is computed before any name is bound.
	vs, err := t.values(exprs, s)
	if err != nil {
		return nil, err
	}

	for i, k := range ks {
		s.Define(k, vs[i])
	}

	return nil, nil
}

func arity(keyword string, operands []cell.I, n int) error {
	if len(operands) != n {
		return failure.New(
			failure.Operation, "%s expects %s, passed %d",
			keyword, validate.Count(n, "operand", "s"), len(operands),
		)
	}

	return nil
}

func name(keyword string, c cell.I) (string, error) {
	if !sym.Is(c) {
		return "", failure.New(
			failure.Operation, "%s: expected a name, got %s",
			keyword, literal.String(c),
		)
	}

	return sym.To(c).String(), nil
}
