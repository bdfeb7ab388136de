// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// Builtin is zy's primitive function type. Its arguments are evaluated
// before it is called.
type Builtin struct {
	fn   func([]cell.I) cell.I
	name string
}

// NewBuiltin creates a builtin that calls fn. Fn may panic with a failure
// (see validate) or any other error to signal that it can't handle its
// arguments.
func NewBuiltin(name string, fn func([]cell.I) cell.I) *Builtin {
	return &Builtin{fn: fn, name: name}
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as a.
func (a *Builtin) Equal(c cell.I) bool {
	p, ok := c.(*Builtin)

	return ok && p == a
}

// Name returns the name of the builtin type.
func (*Builtin) Name() string {
	return "builtin"
}

// The builtin type has a literal representation.

// Literal returns the name the builtin a was created with.
func (a *Builtin) Literal() string {
	return a.name
}

// Methods specific to builtin.

// Call applies the builtin a to args. A panic in a's function is returned
// as an OperationError, or as the failure it panicked with.
func (a *Builtin) Call(args []cell.I) (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err = a.recovered(r)
	}()

	return a.fn(args), nil
}

func (a *Builtin) recovered(r interface{}) error {
	switch r := r.(type) {
	case error:
		if f, ok := failure.As(r); ok {
			return failure.Wrap(r, f.Kind(), "%s: %s", a.name, f.Message())
		}

		return failure.Wrap(r, failure.Operation, "%s: %s", a.name, r.Error())
	case string:
		return failure.New(failure.Operation, "%s: %s", a.name, r)
	case fmt.Stringer:
		return failure.New(failure.Operation, "%s: %s", a.name, r.String())
	}

	return failure.New(failure.Operation, "%s: unexpected error", a.name)
}
