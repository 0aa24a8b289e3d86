package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// CommandWrapper instruments a core command handler. All business logic stays in the wrapped handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CoreCommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// CommandOption configures a CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C])

// NewCommandWrapper wraps coreHandler. The command type is taken from the zero value of C.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) *CommandWrapper[C] {
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		opt(wrapper)
	}

	return wrapper
}

// WithCommandMetrics sets the metrics collector.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) { w.metricsCollector = collector }
}

// WithCommandTracing sets the tracing collector.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) { w.tracingCollector = collector }
}

// WithCommandContextualLogging sets the contextual logger.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) { w.contextualLogger = logger }
}

// WithCommandLogging sets the plain logger.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) { w.logger = logger }
}

// Handle runs the wrapped handler and records its outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := shell.StartHandlerSpan(ctx, w.tracingCollector, shell.SpanNameCommandHandle, shell.LogAttrCommandType, w.commandType)
	shell.LogInfo(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)

	status := shell.StatusFor(err)
	if err == nil && result.Idempotent {
		status = shell.StatusIdempotent
	}

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishHandlerSpan(w.tracingCollector, span, status, duration, err)

	if err != nil {
		shell.LogError(
			ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, w.commandType,
			shell.LogAttrStatus, status,
			shell.LogAttrError, err.Error(),
		)

		return result, err
	}

	shell.LogInfo(
		ctx, w.logger, w.contextualLogger, shell.LogMsgCommandCompleted,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrBusinessOutcome, status,
		shell.LogAttrEventCount, len(result.AppendedEvents),
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}
