package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that writes to
// w and filters at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogSink opens path for appending. The terminal UI owns stdout and
// stderr, so with no path the logs are discarded.
func openLogSink(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// logLevel resolves the configured level; --verbose always wins.
func logLevel(configured string, verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	return log.ParseLevel(configured)
}

type ctxKey int

const sessionKey ctxKey = 0

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// sessionFromContext returns the session set up by the root command, or
// nil when the command runs outside of it.
func sessionFromContext(ctx context.Context) *session {
	s, _ := ctx.Value(sessionKey).(*session)
	return s
}
