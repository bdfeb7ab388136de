// Released under an MIT license. See LICENSE.

// Package history locates, loads and saves zy's REPL history.
package history

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Variable is the environment variable that overrides the history path.
const Variable = "ZY_HISTORY"

// Path returns the location of the history file.
func Path() (string, error) {
	if p := os.Getenv(Variable); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating history")
	}

	return filepath.Join(home, ".zy-history"), nil
}

// Load passes the contents of the history file to read. A missing file
// is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "loading history")
	}

	defer f.Close()

	if err := lock(f, false); err != nil {
		return errors.Wrap(err, "loading history")
	}
	defer unlock(f) //nolint:errcheck

	_, err = read(f)

	return errors.Wrap(err, "loading history")
}

// Save replaces the contents of the history file with what write writes.
func Save(write func(w io.Writer) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "saving history")
	}

	if err := lock(f, true); err != nil {
		f.Close()

		return errors.Wrap(err, "saving history")
	}

	// Truncate only once the lock is held.
	err = f.Truncate(0)
	if err == nil {
		_, err = write(f)
	}

	_ = unlock(f)

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return errors.Wrap(err, "saving history")
}
