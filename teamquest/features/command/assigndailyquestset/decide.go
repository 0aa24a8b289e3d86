package assigndailyquestset

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of assigning the daily quest set.
//
// Business Rules:
//
//	GIVEN: an active team with at least 2 members and a catalog
//	WHEN: AssignDailyQuestSet command is received
//	THEN: DailyQuestSetAssigned with 4 quests of the difficulty for the team's rank is generated
//	REJECTED: team not found, requester is not a member, team dissolved, fewer than 2 members,
//	          not enough active quests in the catalog
//	IDEMPOTENCY: the team already has a set for this date
func Decide(history core.DomainEvents, command Command, catalog []core.Quest) core.DecisionResult {
	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case command.RequesterID != "" && !team.HasMember(command.RequesterID):
		return core.RejectedDecision(core.ErrNotTeamMember)
	case hasSetFor(history, command.TeamID, command.SetDate):
		return core.IdempotentDecision()
	case team.Dissolved:
		return core.RejectedDecision(core.ErrTeamDissolved)
	case !team.IsUnlocked():
		return core.RejectedDecision(core.ErrTeamLocked)
	}

	difficulty := core.DifficultyForRank(team.Rank())

	quests, err := core.PickDailyQuests(catalog, difficulty, core.DailyRand(command.TeamID, command.SetDate))
	if err != nil {
		return core.RejectedDecision(err)
	}

	dailySetID := core.DailySetIDFor(command.TeamID, command.SetDate)

	return core.SuccessDecision(
		core.BuildDailyQuestSetAssigned(
			dailySetID,
			command.TeamID,
			command.SetDate,
			difficulty,
			core.GeneratedByLogic,
			core.BuildDailyItems(dailySetID, quests),
			command.OccurredAt,
		),
	)
}

func hasSetFor(history core.DomainEvents, teamID core.TeamIDString, setDate core.SetDateString) bool {
	for _, event := range history {
		if e, ok := event.(core.DailyQuestSetAssigned); ok && e.TeamID == teamID && e.SetDate == setDate {
			return true
		}
	}

	return false
}

// BuildEventFilter matches the team's lifecycle, members and completions (for the rank),
// and the team's set for setDate.
func BuildEventFilter(teamID core.TeamIDString, setDate core.SetDateString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
			core.QuestCompletedEventType,
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
