package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
)

func TestParse(t *testing.T) {
	c, err := Parse("(+ 1 (* 2 3))")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 (* 2 3))", literal.String(c))

	c, err = Parse("  7 ")
	require.NoError(t, err)
	assert.True(t, num.Float(7).Equal(c))
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"(",
		")",
		"(a))",
		"1 2",
		`"open`,
	} {
		_, err := Parse(s)
		require.Error(t, err, s)
		assert.True(t, failure.Is(err, failure.Syntax), "%q: %v", s, err)
	}
}

func TestParseAll(t *testing.T) {
	cs, err := ParseAll("test", "(-> x 1)\n(+ x 1) x")
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, "(+ x 1)", literal.String(cs[1]))

	cs, err = ParseAll("test", " \n ")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestScanContinuation(t *testing.T) {
	r := New("test")

	cs, err := r.Scan("(-> f (@ (n)")
	require.NoError(t, err)
	assert.Empty(t, cs)
	assert.True(t, r.Pending())

	cs, err = r.Scan("  (* n n)))")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(-> f (@ (n) (* n n)))", literal.String(cs[0]))
	assert.False(t, r.Pending())
}

func TestScanMultiple(t *testing.T) {
	r := New("test")

	cs, err := r.Scan("1 2 (3)")
	require.NoError(t, err)
	assert.Len(t, cs, 3)
}

func TestScanQuotedNewline(t *testing.T) {
	r := New("test")

	cs, err := r.Scan(`(>> "a`)
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = r.Scan(`b")`)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(>> \"a\nb\")", literal.String(cs[0]))
}

func TestScanStrayClose(t *testing.T) {
	r := New("test")

	_, err := r.Scan("1)")
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.Syntax))
	assert.False(t, r.Pending())

	f, ok := failure.As(err)
	require.True(t, ok)
	assert.Equal(t, 1, f.Source().Line)
}

func TestScanErrorLine(t *testing.T) {
	r := New("test")

	_, err := r.Scan("(a")
	require.NoError(t, err)

	_, err = r.Scan("b)")
	require.NoError(t, err)

	_, err = r.Scan(")")
	require.Error(t, err)

	f, ok := failure.As(err)
	require.True(t, ok)
	assert.Equal(t, 3, f.Source().Line)
}

func TestClose(t *testing.T) {
	r := New("test")
	require.NoError(t, r.Close())

	_, err := r.Scan("(a (b")
	require.NoError(t, err)

	err = r.Close()
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.Syntax))
	assert.False(t, r.Pending())
}
