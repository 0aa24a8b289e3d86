package jointeam

import (
	"context"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// CommandHandler resolves the invite code, then runs Query -> Unmarshal -> Decide -> Append,
// and retries both steps on concurrency conflicts.
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

// Handle joins the team. The appended MemberJoinedTeam event carries the TeamID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var result core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		teamID, lookupErr := h.resolveTeam(retryCtx, command.InviteCode)
		if lookupErr != nil {
			result = core.DecisionResult{}
			return lookupErr
		}

		command.TeamID = teamID

		var execErr error
		result, execErr = shell.DecideAndAppend(
			retryCtx,
			h.eventStore,
			BuildEventFilter(command.UserID, command.InviteCode, command.TeamID),
			func(history core.DomainEvents) core.DecisionResult {
				return Decide(history, command)
			},
		)

		return execErr
	}, h.retryOptions...)

	return shell.HandlerResultFrom(retryMetrics, result, err)
}

func (h CommandHandler) resolveTeam(ctx context.Context, inviteCode core.InviteCodeString) (core.TeamIDString, error) {
	if inviteCode == "" {
		return "", nil
	}

	storableEvents, _, err := h.eventStore.Query(eventstore.WithStrongConsistency(ctx), BuildInviteCodeFilter(inviteCode))
	if err != nil {
		return "", err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return "", err
	}

	return TeamOfInviteCode(history, inviteCode), nil
}
