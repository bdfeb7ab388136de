// Released under an MIT license. See LICENSE.

// Package logging provides the logger used by zy for diagnostics.
package logging

import (
	"io"

	"github.com/jcgregorio/logger"
)

// Logger is the subset of logging methods zy uses.
type Logger interface {
	Debugf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warningf(format string, v ...interface{})
}

// New creates a logger writing to w. Debug messages are only written
// when verbose is true.
func New(w logger.SyncWriter, verbose bool) Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		IncludeDebug: verbose,
	})
}

// Discard creates a logger that writes nothing.
func Discard() Logger {
	return New(discard{}, false)
}

type discard struct{}

func (discard) Sync() error {
	return nil
}

func (discard) Write(p []byte) (int, error) {
	return io.Discard.Write(p)
}
