// Package logging builds the diagnostic logger shared by the launcher.
// User facing output goes through internal/ui; this logger only carries
// debug and warning traces on stderr.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Verbose enables debug records.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "gtl",
		ReportTimestamp: false,
	})
}

// Discard returns a logger that drops every record
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns logger, or a discarding logger when it is nil
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
