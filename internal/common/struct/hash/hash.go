// Released under an MIT license. See LICENSE.

// Package hash provides zy's name to value mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
)

// T (hash) maps names to values. It is not safe for concurrent use;
// zy evaluates one expression at a time.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) (cell.I, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Keys returns the names in the hash h in sorted order.
func (h *hash) Keys() []string {
	if h == nil {
		return nil
	}

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = v
}

