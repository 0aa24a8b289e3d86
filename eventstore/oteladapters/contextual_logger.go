package oteladapters

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// SlogBridgeLogger implements eventstore.ContextualLogger with the OpenTelemetry slog bridge.
// Records carry the trace and span ID of the context they are logged with.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger that emits to provider. A nil provider means the global one.
// If local is not nil, every record is also handed to it, typically a JSON handler on stdout.
func NewSlogBridgeLogger(name string, provider log.LoggerProvider, local slog.Handler) *SlogBridgeLogger {
	var bridgeOptions []otelslog.Option
	if provider != nil {
		bridgeOptions = append(bridgeOptions, otelslog.WithLoggerProvider(provider))
	}

	bridge := otelslog.NewHandler(name, bridgeOptions...)
	if local == nil {
		return &SlogBridgeLogger{logger: slog.New(bridge)}
	}

	return &SlogBridgeLogger{logger: slog.New(fanoutHandler{bridge, local})}
}

// NewSlogBridgeLoggerWithHandler uses handler as-is, without the OpenTelemetry bridge.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Logger exposes the underlying *slog.Logger.
func (l *SlogBridgeLogger) Logger() *slog.Logger {
	return l.logger
}

func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ eventstore.ContextualLogger = (*SlogBridgeLogger)(nil)

// fanoutHandler hands each record to all handlers that are enabled for its level.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}

	return out
}
