package regenerateinvite

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// CommandHandler runs Query -> Unmarshal -> Decide -> Append and retries on concurrency conflicts.
// On an invite code collision it starts over with a fresh code.
type CommandHandler struct {
	eventStore    shell.EventStore
	retryOptions  []shell.RetryOption
	inviteTTL     time.Duration
	newInviteCode func() core.InviteCodeString
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithInviteTTL makes new invite codes expire ttl after they were issued. 0 means never.
func WithInviteTTL(ttl time.Duration) Option {
	return func(h *CommandHandler) {
		h.inviteTTL = ttl
	}
}

// WithInviteCodeGenerator replaces shell.NewInviteCode.
func WithInviteCodeGenerator(generate func() core.InviteCodeString) Option {
	return func(h *CommandHandler) {
		h.newInviteCode = generate
	}
}

func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore:    eventStore,
		newInviteCode: shell.NewInviteCode,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle issues a new code. The appended InviteCodeIssued event carries it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if h.inviteTTL > 0 {
		command.InviteExpiresAt = command.OccurredAt.Add(h.inviteTTL)
	}

	var retryMetrics shell.RetryMetrics

	for range core.MaxInviteCodeAttempts {
		command.InviteCode = h.newInviteCode()

		var result core.DecisionResult
		var err error

		retryMetrics, err = shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
			var execErr error
			result, execErr = shell.DecideAndAppend(
				retryCtx,
				h.eventStore,
				BuildEventFilter(command.TeamID, command.InviteCode),
				func(history core.DomainEvents) core.DecisionResult {
					return Decide(history, command)
				},
			)

			return execErr
		}, h.retryOptions...)

		if errors.Is(err, core.ErrInviteCodeTaken) {
			continue
		}

		return shell.HandlerResultFrom(retryMetrics, result, err)
	}

	return shell.NewErrorResult(retryMetrics, nil), core.ErrInviteCodeGenerationFailed
}
