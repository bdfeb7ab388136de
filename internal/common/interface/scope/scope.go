// Released under an MIT license. See LICENSE.

// Package scope defines the interface for zy's environments.
package scope

import (
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// I (scope) is one frame in a chain of environments.
type I interface {
	cell.I

	Enclosing() I

	Define(k string, v cell.I)
	Lookup(k string) (cell.I, bool)
	Names() []string
	Resolve(k string) (cell.I, error)
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

