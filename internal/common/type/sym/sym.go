// Released under an MIT license. See LICENSE.

// Package sym provides zy's symbol cell type.
package sym

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
)

const (
	name = "symbol"
	size = 4096
)

// T (sym) wraps Go's string type. Recently used symbols are interned.
type T string

type sym = T

var cache = intern() //nolint:gochecknoglobals

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

func intern() *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		// Only a non-positive size is an error.
		panic(err.Error())
	}

	return c
}

func symnew(v string) *sym {
	if p, ok := cache.Get(v); ok {
		return p.(*sym)
	}

	s := sym(v)
	cache.Add(v, &s)

	return &s
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
