// Package logging builds the diagnostic logger. Command results are printed by
// the ui package; the logger only carries debug and warning output on stderr.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Level     log.Level
	Formatter log.Formatter
	Writer    io.Writer
	Prefix    string
}

// DefaultOptions logs warnings and errors as text to stderr.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Writer:    os.Stderr,
		Prefix:    "todo",
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:     opts.Level,
		Formatter: opts.Formatter,
		Prefix:    opts.Prefix,
	})
}

// ParseLevel maps a level name to a log.Level. Unknown names fall back to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter maps a formatter name to a log.Formatter. Unknown names fall back to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
