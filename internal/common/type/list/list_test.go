package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
)

func TestNewCopies(t *testing.T) {
	elements := []cell.I{num.Int(1), num.Int(2)}
	l := New(elements...)

	elements[0] = num.Int(9)

	assert.Equal(t, "(1 2)", To(l).Literal())
}

func TestEqual(t *testing.T) {
	a := New(num.Int(1), New(str.New("x")))

	assert.True(t, a.Equal(New(num.Int(1), New(str.New("x")))))
	assert.False(t, a.Equal(New(num.Int(1))))
	assert.False(t, a.Equal(str.New("(1 (\"x\"))")))
	assert.True(t, New().Equal(New()))
}

func TestJoinRepeat(t *testing.T) {
	a, b := New(num.Int(1)), New(num.Int(2), num.Int(3))

	assert.Equal(t, "(1 2 3)", To(Join(a, b)).Literal())
	assert.Equal(t, "(1 2 3)", To(Join(a, New(), b)).Literal())
	assert.Equal(t, "(2 3 2 3)", To(Repeat(b, 2)).Literal())
	assert.Equal(t, "()", To(Repeat(b, -1)).Literal())
	assert.Equal(t, "(1)", To(a).Literal())
	assert.Equal(t, "()", To(Repeat(New(), int(^uint(0)>>1))).Literal())
}
