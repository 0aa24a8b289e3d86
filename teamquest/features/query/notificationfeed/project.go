package notificationfeed

import (
	"slices"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project derives the team notifications and marks the ones the requester has read.
//
// Query Logic:
//
//	GIVEN: every event of the team that produces a notification and the requester's read markers
//	WHEN: NotificationFeed query is executed
//	THEN: NotificationFeed struct is returned, newest first, at most Limit entries
//	REJECTED: team not found, requester is not a member
func Project(history core.DomainEvents, query Query, maxSequence uint) (NotificationFeed, error) {
	team := core.ProjectTeam(history, query.TeamID)

	switch {
	case !team.Exists:
		return NotificationFeed{}, core.ErrTeamNotFound
	case !team.HasMember(query.RequesterID):
		return NotificationFeed{}, core.ErrNotTeamMember
	}

	read := core.ReadNotifications(history, query.TeamID, query.RequesterID)
	notifications := core.TeamNotifications(history, query.TeamID)

	entries := make([]Entry, 0, len(notifications))
	unread := 0

	for _, n := range notifications {
		if !read[n.ID] {
			unread++
		}

		entries = append(entries, Entry{
			NotificationID: n.ID,
			Type:           n.Type,
			Message:        n.Message,
			ActorID:        n.ActorID,
			CreatedAt:      n.CreatedAt,
			IsRead:         read[n.ID],
		})
	}

	// history is in sequence order, so reversing before the stable sort keeps the newest first on equal timestamps
	slices.Reverse(entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	total := len(entries)
	if len(entries) > query.Limit {
		entries = entries[:query.Limit]
	}

	return NotificationFeed{
		Entries:        entries,
		UnreadCount:    unread,
		Total:          total,
		SequenceNumber: maxSequence,
	}, nil
}

// BuildEventFilter matches the team's members, every event that produces a notification for the team,
// and the notifications userID has read.
func BuildEventFilter(teamID core.TeamIDString, userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
			core.DailyQuestSetAssignedEventType,
			core.QuestCompletedEventType,
			core.TeamRankedUpEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		OrMatching().
		AnyEventTypeOf(core.NotificationReadEventType).
		AndAllPredicatesOf(
			eventstore.P("TeamID", teamID),
			eventstore.P("UserID", userID),
		).
		Finalize()
}
