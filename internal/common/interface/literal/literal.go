// Released under an MIT license. See LICENSE.

// Package literal defines the interface for zy types that can be printed
// as source text. It is zy's printer.
package literal

import (
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the canonical source representation for a cell.
// It never fails: a nil cell (no value) prints as the empty string and
// a cell with no literal form prints as its type name in angle brackets.
func String(c cell.I) string {
	if c == nil {
		return ""
	}

	l, ok := c.(I)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
