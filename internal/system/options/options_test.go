package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, tty bool, argv ...string) (*T, error) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	// A nil argv makes docopt fall back to os.Args.
	opts, err := p.ParseArgs(usage, append([]string{}, argv...), Version)
	require.NoError(t, err)

	return From(opts, tty)
}

func TestInteractive(t *testing.T) {
	o, err := parse(t, true)
	require.NoError(t, err)
	assert.True(t, o.Interactive)
	assert.Equal(t, 10000, o.Depth)

	o, err = parse(t, false)
	require.NoError(t, err)
	assert.False(t, o.Interactive)
}

func TestScript(t *testing.T) {
	o, err := parse(t, true, "--verbose", "prog.zy")
	require.NoError(t, err)
	assert.False(t, o.Interactive)
	assert.True(t, o.Verbose)
	assert.Equal(t, "prog.zy", o.Script)

	o, err = parse(t, true, "-")
	require.NoError(t, err)
	assert.False(t, o.Interactive)
	assert.Equal(t, "", o.Script)
}

func TestCommand(t *testing.T) {
	o, err := parse(t, true, "--depth=50", "-c", "(+ 1 2)")
	require.NoError(t, err)
	assert.False(t, o.Interactive)
	assert.Equal(t, "(+ 1 2)", o.Command)
	assert.Equal(t, 50, o.Depth)
}

func TestInvalidDepth(t *testing.T) {
	for _, d := range []string{"0", "-3", "deep"} {
		_, err := parse(t, false, "--depth="+d)
		assert.Error(t, err, d)
	}
}
