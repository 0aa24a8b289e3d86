package usercredentials

import (
	"context"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle reads with strong consistency so a user can log in right after signing up.
func (h QueryHandler) Handle(ctx context.Context, query Query) (UserCredentials, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSeq, err := h.eventStore.Query(ctx, BuildEventFilter(query.Email))
	if err != nil {
		return UserCredentials{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return UserCredentials{}, err
	}

	return Project(history, query, maxSeq), nil
}
