package notificationfeed

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

func (h QueryHandler) Handle(ctx context.Context, query Query) (NotificationFeed, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, maxSeq, err := h.eventStore.Query(ctx, BuildEventFilter(query.TeamID, query.RequesterID))
	if err != nil {
		return NotificationFeed{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return NotificationFeed{}, err
	}

	return Project(history, query, maxSeq)
}
