// Released under an MIT license. See LICENSE.

// Package sequence defines the interface for zy types that can be iterated
// over and indexed.
package sequence

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// I (sequence) is an ordered collection of cells.
type I interface {
	Elements() []cell.I
}

type sequence = I

// Elements returns the elements of c, if c is a sequence.
func Elements(c cell.I) []cell.I {
	s, ok := c.(sequence)
	if !ok {
		failure.Raise(failure.Operation, "%s is not a sequence", name(c))
	}

	return s.Elements()
}

// Index returns the element of c at index i. A negative index counts
// back from the end.
func Index(c cell.I, i int) cell.I {
	es := Elements(c)

	j := i
	if j < 0 {
		j += len(es)
	}

	if j < 0 || j >= len(es) {
		failure.Raise(failure.Operation, "index %d out of range for %s of length %d", i, c.Name(), len(es))
	}

	return es[j]
}

// Is returns true if c is a sequence.
func Is(c cell.I) bool {
	_, ok := c.(sequence)

	return ok
}

func name(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	return c.Name()
}
