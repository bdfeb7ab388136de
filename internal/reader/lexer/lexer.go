// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the zy language.
//
// The zy lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Parentheses and whitespace are the only delimiters outside of double
// quotes. Quoted text is opaque: it is kept verbatim, delimiters included,
// as a single token.
package lexer

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/struct/loc"
	"github.com/michaelmacinnis/zy/internal/common/struct/token"
)

// ErrUnterminated is the cause of the failure returned when the text ends
// inside a quoted string. A caller reading interactively can use it to
// ask for more input.
var ErrUnterminated = errors.New("unterminated string") //nolint:gochecknoglobals

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.

	char int // Column of the current byte.
	line int // Line of the current byte.

	err    error
	source loc.T // Location of the current token's first byte.
	state  action
	tokens []*token.T
}

// New creates a new T for text. The location source gives the label (a
// file name or other identifier) and the position of text's first byte.
func New(source loc.T, text string) *T {
	l := &T{
		bytes:  text,
		char:   source.Char,
		line:   source.Line,
		source: source,
	}

	l.state = skipWhitespace

	return l
}

// Tokens scans all of text and returns its tokens in order.
func Tokens(label, text string) ([]*token.T, error) {
	return New(loc.T{Char: 1, Line: 1, Name: label}, text).Run()
}

// Run scans until the end of the buffer or the first error.
func (l *T) Run() ([]*token.T, error) {
	for l.state != nil {
		l.state = l.state(l)
	}

	return l.tokens, l.err
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.char = 1
	} else {
		l.char++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) fail(cause error) action {
	source := l.source
	l.err = failure.WrapAt(&source, cause, failure.Syntax, "%s", cause.Error())

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.char
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func scanQuoted(l *T) action {
	for {
		switch l.next() {
		case eof:
			return l.fail(ErrUnterminated)
		case '"':
			l.emit(token.Quoted)

			return skipWhitespace
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit(token.Word)

			return nil
		case r == '"', r == '(', r == ')', unicode.IsSpace(r):
			l.emit(token.Word)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()

			continue
		case r == '(':
			l.accept(r, w)
			l.emit(token.Open)

			continue
		case r == ')':
			l.accept(r, w)
			l.emit(token.Close)

			continue
		case r == '"':
			l.accept(r, w)

			return scanQuoted
		}

		return scanWord
	}
}
