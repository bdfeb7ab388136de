// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/number"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func add(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	switch {
	case str.Is(v[0]) && str.Is(v[1]):
		return str.Concat(str.To(v[0]).String(), str.To(v[1]).String())
	case list.Is(v[0]) && list.Is(v[1]):
		return list.Join(v[0], v[1])
	}

	return num.Float(operand(v[0], "+", v[1]) + number.Value(v[1]))
}

func dec(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Float(number.Value(v[0]) - 1)
}

func div(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if str.Is(v[0]) && str.Is(v[1]) {
		return list.New(str.Split(str.To(v[0]).String(), str.To(v[1]).String())...)
	}

	dividend := operand(v[0], "/", v[1])

	divisor := number.Value(v[1])
	if divisor == 0 {
		failure.Raise(failure.Operation, "division by zero")
	}

	return num.Float(dividend / divisor)
}

func inc(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Float(number.Value(v[0]) + 1)
}

func mul(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	// Repetition works with the count on either side.
	x, n := v[0], v[1]
	if number.Is(x) && !number.Is(n) {
		x, n = n, x
	}

	switch {
	case str.Is(x) && number.Is(n):
		return str.Repeat(str.To(x).String(), count(n))
	case list.Is(x) && number.Is(n):
		return list.Repeat(x, count(n))
	}

	return num.Float(operand(v[0], "*", v[1]) * number.Value(v[1]))
}

func pow(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	base := operand(v[0], "**", v[1])
	exponent := number.Value(v[1])

	switch {
	case base == 0 && exponent < 0:
		failure.Raise(failure.Operation, "0 cannot be raised to a negative power")
	case base < 0 && exponent != math.Trunc(exponent):
		failure.Raise(failure.Operation, "negative number cannot be raised to a fractional power")
	}

	return num.Float(math.Pow(base, exponent))
}

func sub(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if str.Is(v[0]) && str.Is(v[1]) {
		return str.RemoveAll(str.To(v[0]).String(), str.To(v[1]).String())
	}

	return num.Float(operand(v[0], "-", v[1]) - number.Value(v[1]))
}

// count returns the number n as a repetition count.
func count(n cell.I) int {
	f := number.Value(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		failure.Raise(failure.Operation, "cannot repeat %s times", literal.String(n))
	}

	return int(f)
}

// operand returns the numeric value of the left operand of op, or raises
// an error naming both operands.
func operand(l cell.I, op string, r cell.I) float64 {
	if !number.Is(l) || !number.Is(r) {
		failure.Raise(
			failure.Operation, "unsupported operand types for %s: %s and %s",
			op, l.Name(), r.Name(),
		)
	}

	return number.Value(l)
}
