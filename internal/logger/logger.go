// Package logger wraps charm/log with the events draftpost reports.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger at info level. Timestamps are off: output is read
// by a person at a terminal, one run at a time.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "draftpost",
	})
	return &Logger{Logger: l}
}

// ForFlags picks the level from the -q / -v flags. Quiet wins.
func ForFlags(w io.Writer, quiet, verbose bool) *Logger {
	switch {
	case quiet:
		return NewWithLevel(w, log.ErrorLevel)
	case verbose:
		return NewWithLevel(w, log.DebugLevel)
	}
	return New(w)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs which config file is in use.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// DraftParsed logs the metadata found in a draft.
func (l *Logger) DraftParsed(draft, title string, tags int, collection string) {
	l.Debug("draft parsed",
		"draft", draft,
		"title", title,
		"tags", tags,
		"collection", collection)
}

// PostWritten logs a successfully written post.
func (l *Logger) PostWritten(path string) {
	l.Info("post created", "path", path)
}

// DraftDeleted logs removal of the source draft.
func (l *Logger) DraftDeleted(draft string) {
	l.Info("draft deleted", "draft", draft)
}

// DraftKept logs that the draft was left in place.
func (l *Logger) DraftKept(draft, reason string) {
	l.Debug("draft kept",
		"draft", draft,
		"reason", reason)
}

// PreviewWritten logs a rendered preview.
func (l *Logger) PreviewWritten(path string) {
	l.Info("preview written", "path", path)
}
