// Released under an MIT license. See LICENSE.

// Package reader turns zy source text into expressions. It encapsulates
// the zy lexer and parser.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/struct/loc"
	"github.com/michaelmacinnis/zy/internal/common/struct/token"
	"github.com/michaelmacinnis/zy/internal/reader/lexer"
	"github.com/michaelmacinnis/zy/internal/reader/parser"
)

// Parse parses text, which must hold exactly one expression.
func Parse(text string) (cell.I, error) {
	tokens, err := lexer.Tokens("input", text)
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)

	c, err := p.Next()
	if err != nil {
		return nil, err
	}

	if t := p.Peek(); t != nil {
		return nil, failure.At(t.Source(), failure.Syntax, "unexpected %s after expression", t.Value())
	}

	return c, nil
}

// ParseAll parses every expression in text. Label names the source of
// text in error messages.
func ParseAll(label, text string) ([]cell.I, error) {
	tokens, err := lexer.Tokens(label, text)
	if err != nil {
		return nil, err
	}

	return parse(tokens)
}

// T (reader) accumulates lines of input until they hold one or more
// complete expressions.
type T struct {
	buffer strings.Builder
	label  string
	line   int // Line number of the first line in buffer.
	lines  int // Lines read so far.
}

type reader = T

// New creates a new reader. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{label: label, line: 1}
}

// Close reports input left over after the final line as an error.
func (r *reader) Close() error {
	if !r.Pending() {
		return nil
	}

	_, err := r.parse()
	if err == nil {
		err = failure.New(failure.Syntax, "unexpected EOF")
	}

	r.reset()

	return err
}

// Pending returns true if the lines read so far hold an incomplete
// expression.
func (r *reader) Pending() bool {
	return strings.TrimSpace(r.buffer.String()) != ""
}

// Reset discards any incomplete expression.
func (r *reader) Reset() {
	r.reset()
}

// Scan adds line to the input and returns the expressions completed by it.
// No expressions and no error means more input is needed, or the input so
// far is blank.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.lines++

	r.buffer.WriteString(line)
	r.buffer.WriteString("\n")

	if !r.Pending() {
		r.reset()

		return nil, nil
	}

	tokens, err := r.tokens()
	if errors.Is(err, lexer.ErrUnterminated) {
		return nil, nil
	}

	if err == nil && depth(tokens) > 0 {
		return nil, nil
	}

	defer r.reset()

	if err != nil {
		return nil, err
	}

	return parse(tokens)
}

func (r *reader) parse() ([]cell.I, error) {
	tokens, err := r.tokens()
	if err != nil {
		return nil, err
	}

	return parse(tokens)
}

func (r *reader) reset() {
	r.buffer.Reset()
	r.line = r.lines + 1
}

func (r *reader) tokens() ([]*token.T, error) {
	source := loc.T{Char: 1, Line: r.line, Name: r.label}

	return lexer.New(source, r.buffer.String()).Run()
}

// depth returns the number of lists left open at the end of tokens.
// A negative running depth means a stray close, which the parser reports.
func depth(tokens []*token.T) int {
	n := 0

	for _, t := range tokens {
		switch t.Class() {
		case token.Open:
			n++
		case token.Close:
			n--
			if n < 0 {
				return n
			}
		}
	}

	return n
}

func parse(tokens []*token.T) ([]cell.I, error) {
	cs := []cell.I{}

	p := parser.New(tokens)
	for p.More() {
		c, err := p.Next()
		if err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}

	return cs, nil
}
