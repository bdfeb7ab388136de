// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/sequence"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

// index returns the element of a sequence: ([:] index sequence).
func index(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return sequence.Index(v[1], integer(v[0]))
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}

// rangeOf returns the integers from start up to, but not including, stop.
func rangeOf(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	start, stop, step := integer(v[0]), integer(v[1]), 1
	if len(v) == 3 {
		step = integer(v[2])
	}

	if step == 0 {
		failure.Raise(failure.Operation, "step must not be zero")
	}

	r := []cell.I{}
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		r = append(r, num.Int(i))
	}

	return list.New(r...)
}

func swap(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return list.New(v[1], v[0])
}
