package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a no-op logger that discards all output. Used by the
// engine and loader test suites so test runs stay quiet.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
