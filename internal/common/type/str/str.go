// Released under an MIT license. See LICENSE.

// Package str provides zy's string type.
package str

import (
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/sequence"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Elements returns the characters of the str s, each as a str.
func (s *str) Elements() []cell.I {
	rs := []rune(s.String())

	es := make([]cell.I, len(rs))
	for i, r := range rs {
		es[i] = New(string(r))
	}

	return es
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the str s.
// Embedded double quotes are escaped; nothing else is.
func (s *str) Literal() string {
	return `"` + strings.ReplaceAll(s.String(), `"`, `\"`) + `"`
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Functions specific to str.

// Concat joins a and b.
func Concat(a, b string) cell.I {
	return New(a + b)
}

// RemoveAll removes every occurrence of sub from s.
func RemoveAll(s, sub string) cell.I {
	return New(strings.ReplaceAll(s, sub, ""))
}

// Repeat repeats s n times. A count less than one produces "".
func Repeat(s string, n int) cell.I {
	if n < 1 {
		return New("")
	}

	return New(strings.Repeat(s, n))
}

// Split splits s at each occurrence of sep and returns the pieces.
func Split(s, sep string) []cell.I {
	if sep == "" {
		failure.Raise(failure.Operation, "empty separator")
	}

	split := strings.Split(s, sep)

	res := make([]cell.I, len(split))
	for i, v := range split {
		res[i] = New(v)
	}

	return res
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a sequence.
	_ = sequence.I(&t)
}
