// Released under an MIT license. See LICENSE.

// Package truth defines the interface for zy types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// I (truth) is anything with its own truth value. Types that do not
// implement it are always true.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only false and nil are false.
func Value(c cell.I) bool {
	if c == nil {
		return false
	}

	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
