// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/number"
	"github.com/michaelmacinnis/zy/internal/common/type/boolean"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func eq(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0].Equal(v[1]))
}

func ge(args []cell.I) cell.I {
	return boolean.Bool(compare(">=", args) >= 0)
}

func gt(args []cell.I) cell.I {
	return boolean.Bool(compare(">", args) > 0)
}

func le(args []cell.I) cell.I {
	return boolean.Bool(compare("<=", args) <= 0)
}

func lt(args []cell.I) cell.I {
	return boolean.Bool(compare("<", args) < 0)
}

// compare orders two numbers or two strings. NaN is unordered: every
// comparison involving it is false.
func compare(op string, args []cell.I) int {
	v := validate.Fixed(args, 2, 2)

	if str.Is(v[0]) && str.Is(v[1]) {
		return strings.Compare(str.To(v[0]).String(), str.To(v[1]).String())
	}

	if !number.Is(v[0]) || !number.Is(v[1]) {
		failure.Raise(
			failure.Operation, "cannot compare %s and %s with %s",
			v[0].Name(), v[1].Name(), op,
		)
	}

	a, b := number.Value(v[0]), number.Value(v[1])

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}

	return unordered(op)
}

// unordered returns a result that makes op false.
func unordered(op string) int {
	switch op {
	case "<", "<=":
		return 1
	}

	return -1
}
