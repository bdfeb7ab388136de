// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for zy.
package ui

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/engine"
	"github.com/michaelmacinnis/zy/internal/reader"
	"github.com/michaelmacinnis/zy/internal/system/history"
	"github.com/michaelmacinnis/zy/internal/system/logging"
)

const (
	// Continuation is the prompt shown while an expression is incomplete.
	Continuation = "... "

	// Primary is the prompt shown when zy is ready for a new expression.
	Primary = "=> "
)

// Evaluator is the interface for things that want to process parsed
// expressions.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

// T (ui) is a line editor on the process's terminal. It is also the
// console zy's I/O functions use while it is running.
type T struct {
	cli *liner.State
	err io.Writer
	log logging.Logger
	out io.Writer
}

type ui = T

// New puts the terminal in line editing mode and returns a new ui.
func New(l logging.Logger) *T {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)

	if err := history.Load(cli.ReadHistory); err != nil {
		l.Warningf("%v", err)
	}

	return &T{
		cli: cli,
		err: color.Error,
		log: l,
		out: color.Output,
	}
}

// Close saves the history and restores the terminal.
func (u *ui) Close() error {
	if err := history.Save(u.cli.WriteHistory); err != nil {
		u.log.Warningf("%v", err)
	}

	return u.cli.Close()
}

// Prompt reads a line of input after displaying prompt.
func (u *ui) Prompt(prompt string) (string, error) {
	return u.cli.Prompt(prompt)
}

// Write writes p to the ui's output.
func (u *ui) Write(p []byte) (int, error) {
	return u.out.Write(p)
}

// Run reads, evaluates and prints expressions until end of input.
func (u *ui) Run(e Evaluator, version string) {
	fmt.Fprintf(u.out, "Zy %s using Go(%s) on %s\n", version, runtime.Version(), runtime.GOOS)

	u.cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return Complete(e.Names(), line, pos)
	})

	r := reader.New("zy")

	for {
		prompt := Primary
		if r.Pending() {
			prompt = Continuation
		}

		line, err := u.cli.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		default:
			if err != io.EOF {
				u.log.Errorf("%v", err)
			}

			fmt.Fprintln(u.out)

			return
		}

		if strings.TrimSpace(line) != "" {
			u.cli.AppendHistory(line)
		}

		cs, err := r.Scan(line)
		if err != nil {
			Failed(u.err, err)

			continue
		}

		Show(u.out, u.err, e, cs)
	}
}

// Complete returns the candidates for the word before pos in line. Names
// starting with the word are offered first; failing that, the word is
// treated as a glob pattern.
func Complete(names []string, line string, pos int) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}

	head, tail = line[:pos], line[pos:]

	start := strings.LastIndexAny(head, "() ") + 1
	word := head[start:]
	head = head[:start]

	for _, name := range names {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}

	if len(completions) > 0 || word == "" {
		return head, completions, tail
	}

	for _, name := range names {
		if ok, err := adapted.Match(word, name); err == nil && ok {
			completions = append(completions, name)
		}
	}

	return head, completions, tail
}

// Failed writes err to w in red.
func Failed(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, err.Error()) //nolint:errcheck
}

// Show evaluates each expression in cs, in order, and prints the results
// worth showing to out. An error is written to errw and stops evaluation.
func Show(out, errw io.Writer, e Evaluator, cs []cell.I) {
	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			Failed(errw, err)

			return
		}

		if engine.Printable(v) {
			fmt.Fprintln(out, literal.String(v))
		}
	}
}
