package shell

import (
	"context"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// DecideAndAppend runs one Query -> Unmarshal -> Decide -> Append cycle with strong consistency.
// Events are appended conditionally on the max sequence number of filter, so the decision is
// lost with eventstore.ErrConcurrencyConflict if anything matching filter was written in between.
//
// The returned error is either an infrastructure error or the business error of the decision.
// The returned result is the zero value if the cycle failed before or during the append.
func DecideAndAppend(
	ctx context.Context,
	es EventStore,
	filter eventstore.Filter,
	decide func(history core.DomainEvents) core.DecisionResult,
) (core.DecisionResult, error) {

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := es.Query(ctx, filter)
	if err != nil {
		return core.DecisionResult{}, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return core.DecisionResult{}, err
	}

	result := decide(history)

	if !result.HasEventToAppend() {
		return result, result.HasError()
	}

	toAppend, err := StorableEventsFrom(result.Events)
	if err != nil {
		return core.DecisionResult{}, err
	}

	if err = es.Append(ctx, filter, maxSequenceNumber, toAppend[0], toAppend[1:]...); err != nil {
		return core.DecisionResult{}, err
	}

	return result, result.HasError()
}

// HandlerResultFrom builds the HandlerResult of a command from its last decision.
func HandlerResultFrom(retryMetrics RetryMetrics, result core.DecisionResult, err error) (HandlerResult, error) {
	switch {
	case err != nil:
		return NewErrorResult(retryMetrics, result.Events), err
	case result.IsIdempotent():
		return NewIdempotentResult(retryMetrics), nil
	default:
		return NewSuccessResult(retryMetrics, result.Events), nil
	}
}
