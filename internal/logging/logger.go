// Package logging builds the diagnostic logger used across xrun.
//
// Diagnostics go to stderr so they never interleave with the progress
// markers and report on stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	Debug   bool
	Output  io.Writer
	NoColor bool
}

// New creates a console logger. The level is warn, or debug when cfg.Debug
// is set.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	noColor := cfg.NoColor
	if f, ok := out.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
