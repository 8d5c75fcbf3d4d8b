// Package logging provides structured logging configuration using log/slog.
//
// Log records go to stdout and, when a log file is configured, are teed to
// that file as well. Request IDs from chi's RequestID middleware and ingest
// run IDs are carried on the context and attached by FromContext.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// LevelTrace sits below debug and is used for per-row diagnostics such as
// unrecognised party codes.
const LevelTrace = slog.LevelDebug - 4

type ctxKey int

const runIDKey ctxKey = iota

// Setup configures the global slog logger based on level, format and an
// optional log file.
//
// Level values: "trace", "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// When file is non-empty, output is written to both stdout and the file
// (appending). The returned closer releases the file; it is a no-op when no
// file is used.
func Setup(level, format, file string) (io.Closer, error) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		out = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	slog.SetDefault(slog.New(NewHandler(out, level, format)))
	return closer, nil
}

// NewHandler builds the handler Setup installs, writing to w.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: replaceLevel,
	}
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceLevel renders LevelTrace as "TRACE" instead of "DEBUG-4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// Trace logs at LevelTrace through the context logger.
func Trace(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Log(ctx, LevelTrace, msg, args...)
}

// WithRunID returns a context carrying an ingest run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunID returns the ingest run ID stored in ctx, if any.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// FromContext returns a logger enriched with request context.
//
// A chi RequestID becomes request_id and an ingest run ID becomes run_id, so
// all entries for one request or one load can be correlated.
//
// Usage:
//
//	func handleRequest(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.FromContext(r.Context())
//	    logger.Info("serving dataset", "year", year)
//	}
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if runID := RunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	yearLogger := logging.WithFields(ctx, "year", 2022, "code", 27966)
//	yearLogger.Info("fetching results")
//	// ... later ...
//	yearLogger.Info("decoded", "records", n)
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
