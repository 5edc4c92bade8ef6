package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextKey type for context keys
type ContextKey string

// TraceIDContextKey carries the request trace id through context.Context
const TraceIDContextKey ContextKey = "trace_id"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldTraceID   = "correlation_id"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Config holds logger configuration
type Config struct {
	Level  slog.Level
	JSON   bool
	Output io.Writer
}

// New creates a slog logger. JSON output is used in production, text otherwise.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// WithTraceID returns a copy of ctx carrying traceID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, traceID)
}

// TraceID extracts the trace id from ctx, or "" when absent
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// Component returns a child logger tagged with the component name
func Component(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String(FieldComponent, component))
}
