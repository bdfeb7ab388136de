// Released under an MIT license. See LICENSE.

// Package failure defines the errors raised by the zy reader and evaluator.
package failure

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/zy/internal/common/struct/loc"
)

// Kind classifies a failure.
type Kind int

// Failure kinds.
const (
	None Kind = iota
	Syntax
	UndefinedVariable
	CountMismatch
	Operation
)

// String returns the name of the kind k as shown to users.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "SyntaxError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case CountMismatch:
		return "CountMismatch"
	case Operation:
		return "OperationError"
	}

	return "Error"
}

// T (failure) is an error of a particular kind.
type T struct {
	kind   Kind
	msg    string
	source *loc.T
	cause  error
}

type failure = T

// Error returns the text of the failure f.
func (f *failure) Error() string {
	s := f.kind.String() + ": " + f.msg
	if f.source != nil {
		s = f.source.String() + ": " + s
	}

	return s
}

// Kind returns the kind of the failure f.
func (f *failure) Kind() Kind {
	return f.kind
}

// Message returns the failure's message without kind or location.
func (f *failure) Message() string {
	return f.msg
}

// Source returns the location, if any, where the failure was detected.
func (f *failure) Source() *loc.T {
	return f.source
}

// Unwrap returns the error, if any, that caused the failure f.
func (f *failure) Unwrap() error {
	return f.cause
}

// New creates a failure of kind k.
func New(k Kind, format string, args ...interface{}) error {
	return errors.WithStack(&failure{
		kind: k,
		msg:  fmt.Sprintf(format, args...),
	})
}

// At creates a failure of kind k detected at the location l.
func At(l *loc.T, k Kind, format string, args ...interface{}) error {
	return errors.WithStack(&failure{
		kind:   k,
		msg:    fmt.Sprintf(format, args...),
		source: l,
	})
}

// Wrap creates a failure of kind k caused by err.
func Wrap(err error, k Kind, format string, args ...interface{}) error {
	return errors.WithStack(&failure{
		kind:  k,
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	})
}

// WrapAt creates a failure of kind k caused by err at the location l.
func WrapAt(l *loc.T, err error, k Kind, format string, args ...interface{}) error {
	return errors.WithStack(&failure{
		kind:   k,
		msg:    fmt.Sprintf(format, args...),
		source: l,
		cause:  err,
	})
}

// As returns the failure underlying err, if there is one.
func As(err error) (*T, bool) {
	var f *failure
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}

// KindOf returns the kind of err, or None if err is not a failure.
func KindOf(err error) Kind {
	if f, ok := errors.Cause(err).(*failure); ok {
		return f.kind
	}

	if f, ok := As(err); ok {
		return f.kind
	}

	return None
}

// Is returns true if err is a failure of kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

// Raise panics with a failure of kind k. Primitives use Raise the way
// validate does; the evaluator recovers it at the point of application.
func Raise(k Kind, format string, args ...interface{}) {
	panic(New(k, format, args...))
}
