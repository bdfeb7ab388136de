// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/validate"
)

func noop(_ []cell.I) cell.I {
	return null.Nil
}

func printLine(c Console) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = display(a)
		}

		_, err := io.WriteString(c, strings.Join(parts, " ")+"\n")
		if err != nil {
			panic(err)
		}

		return null.Nil
	}
}

func readLine(c Console) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Fixed(args, 0, 1)

		prompt := ""
		if len(v) == 1 {
			prompt = display(v[0])
		}

		line, err := c.Prompt(prompt)
		if err == io.EOF {
			failure.Raise(failure.Operation, "EOF when reading a line")
		} else if err != nil {
			panic(err)
		}

		return str.New(line)
	}
}
