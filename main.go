// Released under an MIT license. See LICENSE.

/*
Zy is a small expression language with lexical scoping, first-class
closures and a handful of special forms:

	(-> x 3)
	(? (> x 2) "big" "small")
	(-> square (@ (n) (* n n)))
	(,-> a b 1 2)
	(*> i (.. 1 4) (-> total (+ total i)) total)

Invoked with no arguments on a terminal, zy starts an interactive session.
Otherwise it evaluates a script, a command, or its standard input.

Zy is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/engine"
	"github.com/michaelmacinnis/zy/internal/engine/commands"
	"github.com/michaelmacinnis/zy/internal/system/logging"
	"github.com/michaelmacinnis/zy/internal/system/options"
	"github.com/michaelmacinnis/zy/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(argv []string, stdin io.Reader, stdout io.Writer) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2
	}

	l := logging.New(os.Stderr, opts.Verbose)
	l.Debugf("options: %+v", *opts)

	if opts.Interactive {
		u := ui.New(l)
		defer u.Close()

		u.Run(engine.New(u, opts.Depth, l), options.Version)

		return 0
	}

	// Scripts read from stdin share its buffer with <<.
	in := bufio.NewReader(stdin)

	e := engine.New(commands.Stream(in, stdout), opts.Depth, l)
	emit := func(c cell.I) {
		fmt.Fprintln(stdout, literal.String(c))
	}

	switch {
	case opts.Command != "":
		err = e.Run("command", opts.Command, emit)
	case opts.Script != "":
		err = source(e, opts.Script, emit)
	default:
		err = e.Source("stdin", in, emit)
	}

	if err != nil {
		l.Debugf("%+v", err)
		ui.Failed(os.Stderr, err)

		return 1
	}

	return 0
}

func source(e *engine.T, path string, emit func(cell.I)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.Source(path, f, emit)
}
