// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the zy language.
package parser

import (
	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/struct/token"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/type/sym"
)

// T holds the state of the parser: a cursor over a token sequence.
// The tokens themselves are never modified.
type T struct {
	index  int
	tokens []*token.T
}

// New creates a new parser for tokens.
func New(tokens []*token.T) *T {
	return &T{tokens: tokens}
}

// More returns true if there are tokens left to parse.
func (p *T) More() bool {
	return p.index < len(p.tokens)
}

// Next parses and returns the next expression.
func (p *T) Next() (cell.I, error) {
	t := p.consume()
	if t == nil {
		return nil, failure.New(failure.Syntax, "unexpected EOF")
	}

	switch t.Class() {
	case token.Open:
		return p.list(t)
	case token.Close:
		return nil, failure.At(t.Source(), failure.Syntax, "unexpected )")
	}

	return Atom(t), nil
}

// Peek returns the next token without consuming it, or nil if there are
// no tokens left.
func (p *T) Peek() *token.T {
	if !p.More() {
		return nil
	}

	return p.tokens[p.index]
}

// Atom converts the token t to a string, number or symbol, in that order
// of preference.
func Atom(t *token.T) cell.I {
	v := t.Value()

	if t.Is(token.Quoted) {
		return str.New(v[1 : len(v)-1])
	}

	if n, ok := num.New(v); ok {
		return n
	}

	return sym.Token(t)
}

func (p *T) consume() *token.T {
	t := p.Peek()
	if t != nil {
		p.index++
	}

	return t
}

func (p *T) list(open *token.T) (cell.I, error) {
	elements := []cell.I{}

	for {
		t := p.Peek()

		switch {
		case t == nil:
			return nil, failure.At(open.Source(), failure.Syntax, "unexpected EOF: ( never closed")
		case t.Is(token.Close):
			p.consume()

			return list.New(elements...), nil
		}

		c, err := p.Next()
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}
}
