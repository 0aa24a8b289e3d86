package myteam

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

// Handle reads with strong consistency. Every team-scoped request is routed by its result.
func (h QueryHandler) Handle(ctx context.Context, query Query) (MyTeam, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSeq, err := h.eventStore.Query(ctx, BuildEventFilter(query.UserID))
	if err != nil {
		return MyTeam{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return MyTeam{}, err
	}

	return Project(history, query, maxSeq), nil
}
