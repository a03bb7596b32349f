// Package observability provides the process-wide structured logger.
package observability

import (
	"io"
	"log/slog"
	"os"
)

// Interactive programs log JSON to stderr so the terminal UI owns stdout.
var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// Logger returns the shared application logger.
func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// SetOutput redirects log output, e.g. to a file while the TUI is running.
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewJSONHandler(w, nil))
}
