// Released under an MIT license. See LICENSE.

package commands

import (
	"bufio"
	"io"
	"strings"
)

// Console is the external collaborator behind the I/O functions.
type Console interface {
	io.Writer

	// Prompt writes prompt and returns the next line of input without
	// its line terminator.
	Prompt(prompt string) (string, error)
}

// A stream is a Console that reads lines from a reader and writes to
// a writer.
type stream struct {
	r *bufio.Reader
	w io.Writer
}

// Stream creates a console on top of r and w.
func Stream(r io.Reader, w io.Writer) Console {
	return &stream{r: bufio.NewReader(r), w: w}
}

func (s *stream) Prompt(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(s.w, prompt); err != nil {
			return "", err
		}
	}

	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}

	return strings.TrimRight(line, "\r\n"), err
}

func (s *stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
