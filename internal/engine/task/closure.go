// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
)

// Closure is zy's user-defined function type. It pairs parameter names and
// an unevaluated body with the scope that was current when it was made.
type Closure struct {
	Body   cell.I   // Body of the routine.
	Params []string // Param labels.
	Scope  scope.I  // Captured scope. Calls are evaluated in a child of it.
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as a.
func (a *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == a
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

// The closure type has a literal representation.

// Literal returns the lambda expression that would make a closure like a.
func (a *Closure) Literal() string {
	return "(@ (" + strings.Join(a.Params, " ") + ") " + literal.String(a.Body) + ")"
}
