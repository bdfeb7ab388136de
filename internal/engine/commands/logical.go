// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/truth"
	"github.com/michaelmacinnis/zy/internal/common/type/boolean"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func not(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

func truthy(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(truth.Value(v[0]))
}
