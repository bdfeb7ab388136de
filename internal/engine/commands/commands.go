// Released under an MIT license. See LICENSE.

// Package commands provides zy's built-in functions and constants.
package commands

import (
	"math"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/type/boolean"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
)

// Constants returns a mapping of names to zy's predefined values.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"#f":   boolean.False,
		"#nil": null.Nil,
		"#pi":  num.Float(math.Pi),
		"#t":   boolean.True,
	}
}

// Functions returns a mapping of names to zy's built-in functions.
// The I/O functions read from and write to c.
func Functions(c Console) map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"!":   truthy,
		"!!":  not,
		"'":   makeString,
		"*":   mul,
		"**":  pow,
		"+":   add,
		"++":  inc,
		",":   coerce,
		"-":   sub,
		"--":  dec,
		".":   noop,
		"..":  rangeOf,
		"/":   div,
		"/[":  round,
		"/]":  trunc,
		"<":   lt,
		"<->": swap,
		"<<":  readLine(c),
		"<=":  le,
		"=":   eq,
		">":   gt,
		">=":  ge,
		">>":  printLine(c),
		"[:]": index,
		"[]":  makeList,
	}
}
