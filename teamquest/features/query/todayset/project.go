package todayset

import (
	"slices"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project returns the set assigned to the team for the queried date, items in sort order.
//
// Query Logic:
//
//	GIVEN: the membership events of the team and its set for the date
//	WHEN: TodaySet query is executed
//	THEN: TodaySet struct is returned, Found is false when no set exists
//	REJECTED: team not found, requester is not a member
func Project(history core.DomainEvents, query Query, maxSequence uint) (TodaySet, error) {
	team := core.ProjectTeam(history, query.TeamID)

	switch {
	case !team.Exists:
		return TodaySet{}, core.ErrTeamNotFound
	case !team.HasMember(query.RequesterID):
		return TodaySet{}, core.ErrNotTeamMember
	}

	result := TodaySet{
		TeamID:         query.TeamID,
		SetDate:        query.SetDate,
		SequenceNumber: maxSequence,
	}

	for _, event := range history {
		e, ok := event.(core.DailyQuestSetAssigned)
		if !ok || e.TeamID != query.TeamID || e.SetDate != query.SetDate {
			continue
		}

		result.Found = true
		result.DailySetID = e.DailySetID
		result.Difficulty = e.Difficulty
		result.GeneratedBy = e.GeneratedBy
		result.Items = make([]Item, 0, len(e.Items))

		for _, item := range e.Items {
			result.Items = append(result.Items, Item{
				ItemID:     item.ItemID,
				QuestID:    item.QuestID,
				QuestName:  item.QuestName,
				Category:   item.Category,
				Difficulty: item.Difficulty,
				Points:     item.Points,
				SortOrder:  item.SortOrder,
			})
		}

		slices.SortFunc(result.Items, func(a, b Item) int {
			return a.SortOrder - b.SortOrder
		})

		break
	}

	return result, nil
}

// BuildEventFilter creates the filter for the team's membership and its set on setDate.
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
		AnyEventTypeOf(core.DailyQuestSetAssignedEventType).
		AndAllPredicatesOf(
			eventstore.P("TeamID", teamID),
			eventstore.P("SetDate", setDate),
		).
		Finalize()
}
