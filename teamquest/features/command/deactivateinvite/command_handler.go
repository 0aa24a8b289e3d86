package deactivateinvite

import (
	"context"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// CommandHandler runs Query -> Unmarshal -> Decide -> Append and retries on concurrency conflicts.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		result, execErr = shell.DecideAndAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.TeamID),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err)
}
