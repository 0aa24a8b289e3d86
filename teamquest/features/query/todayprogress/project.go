package todayprogress

import (
	"slices"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project computes the per-item progress of the queried day.
// Completions of users who have left the team are not counted.
//
// Query Logic:
//
//	GIVEN: the membership events of the team, its set and its completions for the date
//	WHEN: TodayProgress query is executed
//	THEN: TodayProgress struct is returned
//	REJECTED: team not found, requester is not a member
func Project(history core.DomainEvents, query Query, maxSequence uint) (TodayProgress, error) {
	team := core.ProjectTeam(history, query.TeamID)

	switch {
	case !team.Exists:
		return TodayProgress{}, core.ErrTeamNotFound
	case !team.HasMember(query.RequesterID):
		return TodayProgress{}, core.ErrNotTeamMember
	}

	var set *core.DailyQuestSetAssigned
	completedBy := make(map[core.ItemIDString]map[core.UserIDString]bool)
	checkedIn := make(map[core.UserIDString]bool)

	for _, event := range history {
		switch e := event.(type) {
		case core.DailyQuestSetAssigned:
			if e.TeamID == query.TeamID && e.SetDate == query.SetDate && set == nil {
				set = &e
			}

		case core.QuestCompleted:
			if e.TeamID != query.TeamID || e.SetDate != query.SetDate || !team.HasMember(e.UserID) {
				continue
			}

			if completedBy[e.ItemID] == nil {
				completedBy[e.ItemID] = make(map[core.UserIDString]bool)
			}

			completedBy[e.ItemID][e.UserID] = true
			checkedIn[e.UserID] = true
		}
	}

	result := TodayProgress{
		SetDate:          query.SetDate,
		MemberCount:      team.MemberCount(),
		CheckedInMembers: len(checkedIn),
		SequenceNumber:   maxSequence,
	}

	if set != nil {
		result.Difficulty = set.Difficulty
		result.Items = make([]ItemProgress, 0, len(set.Items))

		for _, item := range set.Items {
			byMe := completedBy[item.ItemID][query.RequesterID]
			if byMe {
				result.CompletedByMe++
			}

			result.Items = append(result.Items, ItemProgress{
				ItemID:          item.ItemID,
				QuestName:       item.QuestName,
				Category:        item.Category,
				Points:          item.Points,
				SortOrder:       item.SortOrder,
				CompletedCount:  len(completedBy[item.ItemID]),
				MemberCount:     result.MemberCount,
				IsCompletedByMe: byMe,
			})
		}

		slices.SortFunc(result.Items, func(a, b ItemProgress) int {
			return a.SortOrder - b.SortOrder
		})
	}

	result.MoodComment = core.TeamMoodComment(result.CheckedInMembers, result.MemberCount, result.Difficulty)

	return result, nil
}

// BuildEventFilter creates the filter for the team's membership, its set and its completions on setDate.
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
		AnyEventTypeOf(
			core.DailyQuestSetAssignedEventType,
			core.QuestCompletedEventType,
		).
		AndAllPredicatesOf(
			eventstore.P("TeamID", teamID),
			eventstore.P("SetDate", setDate),
		).
		Finalize()
}
