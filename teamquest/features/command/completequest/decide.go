package completequest

import (
	"fmt"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type state struct {
	team             core.TeamState
	set              core.DailyQuestSetAssigned
	hasSet           bool
	alreadyCompleted bool
}

// Decide implements the business logic of completing a quest.
//
// Business Rules:
//
//	GIVEN: a member of an active, unlocked team and an item of the team's set for today
//	WHEN: CompleteQuest command is received
//	THEN: QuestCompleted is generated, plus TeamRankedUp if the new total reaches a higher rank
//	REJECTED: team not found, user is not a member
//	ERROR: team dissolved or locked, no set for today, item not in today's set (CompletingQuestFailed)
//	IDEMPOTENCY: the user already completed this item
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command)

	switch {
	case !s.team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case !s.team.HasMember(command.UserID):
		return core.RejectedDecision(core.ErrNotTeamMember)
	case s.alreadyCompleted:
		return core.IdempotentDecision()
	case s.team.Dissolved:
		return failed(command, core.ErrTeamDissolved)
	case !s.team.IsUnlocked():
		return failed(command, core.ErrTeamLocked)
	case !s.hasSet:
		return failed(command, core.ErrDailySetNotFound)
	}

	item, ok := s.set.Item(command.ItemID)
	if !ok {
		return failed(command, core.ErrQuestItemNotFound)
	}

	member, _ := s.team.Member(command.UserID)
	rankBefore := s.team.Rank()
	total := s.team.TotalPoints + item.Points

	completed := core.BuildQuestCompleted(
		command.TeamID,
		command.UserID,
		member.DisplayName,
		s.set,
		item,
		total,
		command.OccurredAt,
	)

	if !completed.TeamRank.IsAbove(rankBefore) {
		return core.SuccessDecision(completed)
	}

	return core.SuccessDecision(
		completed,
		core.BuildTeamRankedUp(command.TeamID, rankBefore, completed.TeamRank, total, command.OccurredAt),
	)
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildCompletingQuestFailed(command.TeamID, command.UserID, command.ItemID, reason.Error(), command.OccurredAt)
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), reason))
}

func project(history core.DomainEvents, command Command) state {
	s := state{team: core.ProjectTeam(history, command.TeamID)}

	for _, event := range history {
		switch e := event.(type) {
		case core.DailyQuestSetAssigned:
			if e.TeamID == command.TeamID && e.SetDate == command.SetDate {
				s.set = e
				s.hasSet = true
			}

		case core.QuestCompleted:
			if e.UserID == command.UserID && e.ItemID == command.ItemID {
				s.alreadyCompleted = true
			}
		}
	}

	return s
}

// BuildEventFilter matches the team's lifecycle, members and completions (for the total),
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
