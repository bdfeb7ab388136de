// Released under an MIT license. See LICENSE.

// Package options parses zy's command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Version is zy's version.
const Version = "0.0.2"

const usage = `zy

Usage:
  zy [--verbose] [--depth=N] [SCRIPT]
  zy [--verbose] [--depth=N] -c COMMAND
  zy -h | --help
  zy --version

Arguments:
  SCRIPT  Path to zy script. Use - to read from stdin.

Options:
  -c, --command=COMMAND  Evaluate the specified expressions.
  -d, --depth=N          Maximum evaluation depth [default: 10000].
  -h, --help             Display this help.
  -v, --verbose          Write debug messages to stderr.
  --version              Print zy version.

If zy's stdin is a TTY and zy was invoked with no script or command, zy
starts an interactive session. Otherwise, zy reads expressions from stdin.
`

// T holds zy's configuration.
type T struct {
	Command     string
	Depth       int
	Interactive bool
	Script      string
	Verbose     bool
}

// Parse parses the command line in argv (without the program name).
// It exits on --help, --version and usage errors.
func Parse(argv []string) (*T, error) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	return From(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// From builds a configuration from parsed options. Tty reports whether
// stdin is a terminal.
func From(opts docopt.Opts, tty bool) (*T, error) {
	t := &T{}

	t.Command, _ = opts.String("--command")
	t.Script, _ = opts.String("SCRIPT")
	t.Verbose, _ = opts.Bool("--verbose")

	depth, _ := opts.String("--depth")
	if depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil || n < 1 {
			return nil, errors.Errorf("invalid depth: %q", depth)
		}

		t.Depth = n
	}

	if t.Script == "-" {
		t.Script = ""
	} else if t.Script == "" && t.Command == "" {
		t.Interactive = tty
	}

	return t, nil
}
