package config

import (
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AntonStoeckl/teamquest/eventstore/oteladapters"
)

// NewZapLogger creates the process logger used by the HTTP layer and the CLI. With observability
// enabled and a non-nil provider, records are also teed to provider.
func NewZapLogger(cfg ObservabilityConfig, provider log.LoggerProvider) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), level)

	if cfg.Enabled && provider != nil {
		core = zapcore.NewTee(core, otelzap.NewCore(cfg.ServiceName, otelzap.WithLoggerProvider(provider)))
	}

	return zap.New(core, zap.AddCaller()), nil
}

// NewContextualLogger creates the slog based logger handed to the event store and the
// handler wrappers. With observability enabled and a non-nil provider, records also go to provider.
func NewContextualLogger(cfg ObservabilityConfig, provider log.LoggerProvider) *oteladapters.SlogBridgeLogger {
	local := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(cfg.LogLevel)})

	if !cfg.Enabled || provider == nil {
		return oteladapters.NewSlogBridgeLoggerWithHandler(local)
	}

	return oteladapters.NewSlogBridgeLogger(cfg.ServiceName, provider, local)
}

func slogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return l
}
