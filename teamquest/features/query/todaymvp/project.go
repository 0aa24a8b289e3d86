package todaymvp

import (
	"time"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type score struct {
	userID           core.UserIDString
	displayName      string
	points           int
	firstCompletedAt time.Time
}

// beats orders by points descending, then first completion ascending, then user ID.
func (s score) beats(other score) bool {
	if s.points != other.points {
		return s.points > other.points
	}

	if !s.firstCompletedAt.Equal(other.firstCompletedAt) {
		return s.firstCompletedAt.Before(other.firstCompletedAt)
	}

	return s.userID < other.userID
}

// Project aggregates the completions of the queried day and picks the MVP.
//
// Query Logic:
//
//	GIVEN: the membership events of the team and its completions for the date
//	WHEN: TodayMVP query is executed
//	THEN: TodayMVP struct is returned, Found is false without completions
//	INCLUDES: completions of users who have left the team since
//	REJECTED: team not found, requester is not a member
func Project(history core.DomainEvents, query Query, maxSequence uint) (TodayMVP, error) {
	team := core.ProjectTeam(history, query.TeamID)

	switch {
	case !team.Exists:
		return TodayMVP{}, core.ErrTeamNotFound
	case !team.HasMember(query.RequesterID):
		return TodayMVP{}, core.ErrNotTeamMember
	}

	scores := make(map[core.UserIDString]*score)

	for _, event := range history {
		e, ok := event.(core.QuestCompleted)
		if !ok || e.TeamID != query.TeamID || e.SetDate != query.SetDate {
			continue
		}

		s, seen := scores[e.UserID]
		if !seen {
			s = &score{userID: e.UserID, displayName: e.DisplayName, firstCompletedAt: e.OccurredAt}
			scores[e.UserID] = s
		}

		s.points += e.Points
		if e.OccurredAt.Before(s.firstCompletedAt) {
			s.firstCompletedAt = e.OccurredAt
		}
	}

	var best *score
	for _, s := range scores {
		if best == nil || s.beats(*best) {
			best = s
		}
	}

	if best == nil {
		return TodayMVP{SequenceNumber: maxSequence}, nil
	}

	return TodayMVP{
		Found:            true,
		UserID:           best.userID,
		DisplayName:      best.displayName,
		TotalPoints:      best.points,
		FirstCompletedAt: best.firstCompletedAt,
		SequenceNumber:   maxSequence,
	}, nil
}

// BuildEventFilter creates the filter for the team's membership and its completions on setDate.
func BuildEventFilter(teamID core.TeamIDString, setDate core.SetDateString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		OrMatching().
		AnyEventTypeOf(core.QuestCompletedEventType).
		AndAllPredicatesOf(
			eventstore.P("TeamID", teamID),
			eventstore.P("SetDate", setDate),
		).
		Finalize()
}
