package myteam

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project replays the joins and departures of the queried user. Dissolving a team emits a
// MemberLeftTeam for every member, so no team lifecycle events are needed.
func Project(history core.DomainEvents, query Query, maxSequence uint) MyTeam {
	result := MyTeam{SequenceNumber: maxSequence}

	for _, event := range history {
		switch e := event.(type) {
		case core.MemberJoinedTeam:
			if e.UserID == query.UserID {
				result.TeamID = e.TeamID
				result.IsOwner = e.IsOwner
				result.JoinedAt = e.OccurredAt
			}

		case core.MemberLeftTeam:
			if e.UserID == query.UserID && e.TeamID == result.TeamID {
				result = MyTeam{SequenceNumber: maxSequence}
			}
		}
	}

	return result
}

// BuildEventFilter creates the filter for the membership events of userID.
func BuildEventFilter(userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
		).
		AndAnyPredicateOf(eventstore.P("UserID", userID)).
		Finalize()
}
