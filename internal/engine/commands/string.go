// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func makeString(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if str.Is(v[0]) {
		return v[0]
	}

	return str.New(literal.String(v[0]))
}

// display returns the text of c as it is shown by print: strings without
// quotes, everything else as a literal.
func display(c cell.I) string {
	if str.Is(c) {
		return str.To(c).String()
	}

	return literal.String(c)
}
