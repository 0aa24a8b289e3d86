package eventstore

import "context"

// ConsistencyLevel tells an engine whether a read may be served by a replica.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. Command handlers need it for the Query-Decide-Append cycle.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica. Query handlers use it.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key holding the ConsistencyLevel.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency marks ctx so that reads go to the primary database.
//
//	ctx = eventstore.WithStrongConsistency(ctx)
//	events, maxSeq, err := store.Query(ctx, filter)
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency marks ctx so that reads may go to a replica database, when one is configured.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel defaults to StrongConsistency when ctx carries no level.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
