// Package logger provides debug diagnostics for the lgrep CLI using zerolog.
//
// The search core never logs; diagnostics are emitted only by the command
// layer, and only when debug output was requested.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. When debug is false the
// logger is disabled entirely and produces no output.
func New(debug bool) zerolog.Logger {
	return NewWithOutput(debug, os.Stderr)
}

// NewWithOutput returns a logger writing to a custom writer.
// This is useful for testing.
func NewWithOutput(debug bool, out io.Writer) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
