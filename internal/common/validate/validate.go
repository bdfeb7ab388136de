// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to zy primitives.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// Fixed returns actual if it holds between min and max arguments.
// Otherwise it raises an OperationError.
func Fixed(actual []cell.I, min, max int) []cell.I {
	n := len(actual)

	switch {
	case min == max && n != min:
		failure.Raise(failure.Operation, "expected %s, passed %d", Count(min, "argument", "s"), n)
	case n < min:
		failure.Raise(failure.Operation, "expected at least %s, passed %d", Count(min, "argument", "s"), n)
	case max >= 0 && n > max:
		failure.Raise(failure.Operation, "expected at most %s, passed %d", Count(max, "argument", "s"), n)
	}

	return actual
}

// Variadic returns actual if it holds at least min arguments.
// Otherwise it raises an OperationError.
func Variadic(actual []cell.I, min int) []cell.I {
	return Fixed(actual, min, -1)
}

// Count returns n and label, with the plural suffix p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
