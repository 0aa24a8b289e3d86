package assigndailyquestset

import (
	"context"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// QuestCatalog provides the quests to pick from.
type QuestCatalog interface {
	Quests() []core.Quest
}

// CommandHandler runs Query -> Unmarshal -> Decide -> Append and retries on concurrency conflicts.
type CommandHandler struct {
	eventStore   shell.EventStore
	catalog      QuestCatalog
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

func NewCommandHandler(eventStore shell.EventStore, catalog QuestCatalog, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		catalog:    catalog,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle assigns the set. A concurrent assignment of the same (team, date) makes this one idempotent.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult
	catalog := h.catalog.Quests()

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		result, execErr = shell.DecideAndAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.TeamID, command.SetDate),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command, catalog)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err)
}
