// Released under an MIT license. See LICENSE.

// Package list provides zy's list type. Lists are both expression trees,
// as produced by the parser, and values, as produced by primitives.
package list

import (
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/sequence"
)

const name = "list"

// T (list) is an ordered sequence of cells. A list, once made, is not
// modified.
type T []cell.I

type list = T

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	l := make(list, len(elements))
	copy(l, elements)

	return &l
}

// Elements returns the elements of the list l.
func (l *list) Elements() []cell.I {
	return *l
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := *To(c)
	if len(o) != len(*l) {
		return false
	}

	for i, e := range *l {
		if !e.Equal(o[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	parts := make([]string, len(*l))
	for i, e := range *l {
		parts[i] = literal.String(e)
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// Functions specific to list.

// Join creates a new list with every element of every list in lists.
func Join(lists ...cell.I) cell.I {
	joined := list{}
	for _, c := range lists {
		joined = append(joined, *To(c)...)
	}

	return &joined
}

// Repeat creates a new list with the elements of c repeated n times.
// A count less than one produces the empty list.
func Repeat(c cell.I, n int) cell.I {
	repeated := list{}
	if len(*To(c)) == 0 {
		return &repeated
	}

	for i := 0; i < n; i++ {
		repeated = append(repeated, *To(c)...)
	}

	return &repeated
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a sequence.
	_ = sequence.I(&t)
}
