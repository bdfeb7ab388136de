// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/number"
	"github.com/michaelmacinnis/zy/internal/common/type/boolean"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func coerce(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	switch {
	case num.Is(v[0]):
		return v[0]
	case boolean.Is(v[0]):
		if boolean.To(v[0]).Bool() {
			return num.Int(1)
		}

		return num.Int(0)
	case str.Is(v[0]):
		s := strings.TrimSpace(str.To(v[0]).String())

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			failure.Raise(failure.Operation, "could not convert string to number: %s", literal.String(v[0]))
		}

		return num.Float(f)
	}

	return num.Float(number.Value(v[0]))
}

func round(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Float(math.Round(number.Value(v[0])))
}

func trunc(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Float(float64(integer(v[0])))
}

// integer returns the number c truncated toward zero.
func integer(c cell.I) int {
	f := number.Value(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		failure.Raise(failure.Operation, "cannot convert %s to an integer", literal.String(c))
	}

	return int(f)
}
