// Released under an MIT license. See LICENSE.

// Package num provides zy's number type.
package num

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/number"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from a string, if the string is a number.
func New(s string) (cell.I, bool) {
	// Out of range literals become ±Inf.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}

	return Float(f), true
}

// Float creates a num from the float64 f.
func Float(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Float(float64(i))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n. Whole numbers below 1e21 are
// written without an exponent.
func (n *num) String() string {
	f := n.Float()
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a number.
	_ = number.I(&t)
}
