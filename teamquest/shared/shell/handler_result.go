package shell

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// HandlerResult is the outcome of a command handler execution: the business outcome
// plus retry metadata for the observability wrapper.
type HandlerResult struct {
	// Idempotent is true when no state change was needed. It is an outcome, not an error.
	Idempotent bool

	// AppendedEvents are the domain events that were written, in order.
	// Callers read IDs generated by the handler from them (e.g. the new team ID).
	AppendedEvents core.DomainEvents

	RetryAttempts    int
	TotalRetryDelay  time.Duration
	LastErrorType    string
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for operations that appended events.
func NewSuccessResult(retryMetrics RetryMetrics, appended core.DomainEvents) HandlerResult {
	result := withRetryMetrics(retryMetrics)
	result.AppendedEvents = appended

	return result
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	result := withRetryMetrics(retryMetrics)
	result.Idempotent = true

	return result
}

// NewErrorResult creates a HandlerResult for failed operations.
// A recorded failure event is still reported in AppendedEvents.
func NewErrorResult(retryMetrics RetryMetrics, appended core.DomainEvents) HandlerResult {
	result := withRetryMetrics(retryMetrics)
	result.AppendedEvents = appended

	return result
}

func withRetryMetrics(retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// AppendedEvent returns the first appended event of type E.
func AppendedEvent[E core.DomainEvent](result HandlerResult) (E, bool) {
	for _, event := range result.AppendedEvents {
		if e, ok := event.(E); ok {
			return e, true
		}
	}

	var zero E

	return zero, false
}
