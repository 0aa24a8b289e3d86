package core

// DecisionResult is what every Decide function returns.
//
// Only construct it with IdempotentDecision, SuccessDecision, ErrorDecision or RejectedDecision.
type DecisionResult struct {
	Outcome string       // "idempotent", "success", "error" or "rejected"
	Events  DomainEvents // empty for idempotent and rejected decisions
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
	rejectedOutcome   = "rejected"
)

// IdempotentDecision means the requested state already exists. Nothing is appended.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// SuccessDecision carries the events to append atomically.
func SuccessDecision(event DomainEvent, additionalEvents ...DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Events:  append(DomainEvents{event}, additionalEvents...),
	}
}

// ErrorDecision records a business rule violation as an event and reports err.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Events:  DomainEvents{event},
		Err:     err,
	}
}

// RejectedDecision reports err without recording anything, for violations not worth an event.
func RejectedDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: rejectedOutcome,
		Err:     err,
	}
}

// HasEventToAppend returns true if there is at least one event to append to the event store.
func (r DecisionResult) HasEventToAppend() bool {
	return len(r.Events) > 0
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome || r.Outcome == rejectedOutcome {
		return r.Err
	}

	return nil
}

// IsIdempotent is true if nothing had to change.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}
