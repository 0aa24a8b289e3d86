package teamdetail

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

func (h QueryHandler) Handle(ctx context.Context, query Query) (TeamDetail, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, maxSeq, err := h.eventStore.Query(ctx, BuildEventFilter(query.TeamID))
	if err != nil {
		return TeamDetail{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return TeamDetail{}, err
	}

	return Project(history, query, maxSeq)
}
