package shell

import (
	"context"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// QueriesEvents is what query handlers need from the event store.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need from the event store.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvent eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by every command type.
type Command interface {
	CommandType() string
}

// Query is implemented by every query type.
type Query interface {
	QueryType() string
}

// QueryResult is implemented by every projection. GetSequenceNumber is the highest
// sequence number the projection includes.
type QueryResult interface {
	GetSequenceNumber() uint
}

// CoreCommandHandler processes a command without any observability concerns.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CoreQueryHandler processes a query without any observability concerns.
type CoreQueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
