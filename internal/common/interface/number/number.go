// Released under an MIT license. See LICENSE.

// Package number defines the interface for zy's numeric types.
package number

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// I (number) is anything that can be treated as a number in zy.
type I interface {
	Float() float64
}

type number = I

// Is returns true if c can be used in a numeric context.
func Is(c cell.I) bool {
	_, ok := c.(number)

	return ok
}

// Value returns the float64 value for a cell, if possible.
func Value(c cell.I) float64 {
	n, ok := c.(number)
	if !ok {
		failure.Raise(failure.Operation, "%s cannot be used in a numeric context", name(c))
	}

	return n.Float()
}

func name(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	return c.Name()
}
