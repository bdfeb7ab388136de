package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	out := &bytes.Buffer{}

	status := run([]string{"-c", "(-> x 5) (+ x 1)"}, strings.NewReader(""), out)
	assert.Equal(t, 0, status)
	assert.Equal(t, "6\n", out.String())
}

func TestCommandError(t *testing.T) {
	out := &bytes.Buffer{}

	status := run([]string{"-c", "(>> 1) undefined (>> 2)"}, strings.NewReader(""), out)
	assert.Equal(t, 1, status)
	assert.Equal(t, "1\n", out.String())
}

func TestScript(t *testing.T) {
	p := filepath.Join(t.TempDir(), "fact.zy")
	require.NoError(t, os.WriteFile(p, []byte(`
(-> fact (@ (n)
  (? (< n 2)
     1
     (* n (fact (-- n))))))
(>> "5! =" (fact 5))
`), 0o600))

	out := &bytes.Buffer{}

	status := run([]string{p}, strings.NewReader(""), out)
	assert.Equal(t, 0, status)
	assert.Equal(t, "5! = 120\n", out.String())
}

func TestMissingScript(t *testing.T) {
	status := run([]string{filepath.Join(t.TempDir(), "nope.zy")}, strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, 1, status)
}

func TestStdin(t *testing.T) {
	out := &bytes.Buffer{}

	status := run([]string{"-"}, strings.NewReader("(<< \"? \")\nanswer\n"), out)
	assert.Equal(t, 0, status)
	assert.Equal(t, "? \"answer\"\n", out.String())
}
