// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed zy code.
package engine

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
	"github.com/michaelmacinnis/zy/internal/common/type/env"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/engine/commands"
	"github.com/michaelmacinnis/zy/internal/engine/task"
	"github.com/michaelmacinnis/zy/internal/reader"
	"github.com/michaelmacinnis/zy/internal/system/logging"
)

// T (engine) is a facade in front of the machinery for evaluating zy code.
type T struct {
	global scope.I
	log    logging.Logger
	task   *task.T
}

type engine = T

// Global creates a new root environment holding zy's constants and
// built-in functions. The I/O functions use the console c.
func Global(c commands.Console) scope.I {
	s := env.New(nil)

	for k, v := range commands.Constants() {
		s.Define(k, v)
	}

	for k, fn := range commands.Functions(c) {
		s.Define(k, task.NewBuiltin(k, fn))
	}

	return s
}

// New creates a new engine with its own global environment. Evaluation
// fails when it nests deeper than limit (see task.New).
func New(c commands.Console, limit int, l logging.Logger) *T {
	if l == nil {
		l = logging.Discard()
	}

	return &T{
		global: Global(c),
		log:    l,
		task:   task.New(limit),
	}
}

// Printable returns true if the result c should be shown to the user.
// No value and #nil are not shown.
func Printable(c cell.I) bool {
	return c != nil && c != null.Nil
}

// Evaluate evaluates c in the engine's global environment.
func (e *engine) Evaluate(c cell.I) (cell.I, error) {
	return e.EvaluateIn(c, e.global)
}

// EvaluateIn evaluates c in the scope s.
func (e *engine) EvaluateIn(c cell.I, s scope.I) (cell.I, error) {
	v, err := e.task.Eval(c, s)
	if err != nil {
		e.log.Debugf("evaluation failed: %+v", err)
	}

	return v, err
}

// Global returns the engine's global environment.
func (e *engine) Global() scope.I {
	return e.global
}

// Names returns the special form keywords and every name bound in the
// global environment, sorted.
func (e *engine) Names() []string {
	names := append(task.Keywords(), e.global.Names()...)
	sort.Strings(names)

	return names
}

// Run evaluates every expression in text. See Source.
func (e *engine) Run(label, text string, emit func(cell.I)) error {
	return e.Source(label, strings.NewReader(text), emit)
}

// Source reads zy code from r a line at a time and evaluates each
// expression as soon as it is complete. Results worth showing are passed
// to emit. The first error stops evaluation and is returned.
func (e *engine) Source(label string, r io.Reader, emit func(cell.I)) error {
	e.log.Debugf("sourcing %s", label)

	rd := reader.New(label)
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		eof := err == io.EOF
		if line != "" || !eof {
			cs, err := rd.Scan(strings.TrimRight(line, "\r\n"))
			if err != nil {
				return err
			}

			if err := e.each(cs, emit); err != nil {
				return err
			}
		}

		if eof {
			break
		}
	}

	return rd.Close()
}

func (e *engine) each(cs []cell.I, emit func(cell.I)) error {
	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		if emit != nil && Printable(v) {
			emit(v)
		}
	}

	return nil
}
