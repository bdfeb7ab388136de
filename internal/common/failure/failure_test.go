package failure

import (
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zy/internal/common/struct/loc"
)

func TestError(t *testing.T) {
	err := New(Operation, "bad %s", "thing")
	assert.Equal(t, "OperationError: bad thing", err.Error())
	assert.Equal(t, Operation, KindOf(err))

	err = At(&loc.T{Char: 3, Line: 2, Name: "f.zy"}, Syntax, "unexpected )")
	assert.Equal(t, "f.zy:2:3: SyntaxError: unexpected )", err.Error())
	assert.True(t, Is(err, Syntax))
	assert.False(t, Is(err, Operation))
}

func TestKinds(t *testing.T) {
	for k, s := range map[Kind]string{
		None:              "Error",
		Syntax:            "SyntaxError",
		UndefinedVariable: "UndefinedVariable",
		CountMismatch:     "CountMismatch",
		Operation:         "OperationError",
	} {
		assert.Equal(t, s, k.String())
	}
}

func TestWrap(t *testing.T) {
	err := WrapAt(&loc.T{Char: 1, Line: 1, Name: "x"}, io.EOF, Syntax, "unterminated")
	assert.True(t, errors.Is(err, io.EOF))

	f, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "unterminated", f.Message())
	assert.Equal(t, Syntax, f.Kind())
	assert.Equal(t, io.EOF, f.Unwrap())

	outer := Wrap(err, Operation, "outer")
	assert.Equal(t, Operation, KindOf(outer))
	assert.True(t, errors.Is(outer, io.EOF))
}

func TestStack(t *testing.T) {
	err := New(CountMismatch, "mismatch")
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestStack")
}

func TestNotFailure(t *testing.T) {
	assert.Equal(t, None, KindOf(io.EOF))

	_, ok := As(io.EOF)
	assert.False(t, ok)
}

func TestRaise(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, Is(err, UndefinedVariable))
	}()

	Raise(UndefinedVariable, "x")
}
