package dissolveteam

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of dissolving a team.
//
// Business Rules:
//
//	GIVEN: a team and its owner
//	WHEN: DissolveTeam command is received
//	THEN: TeamDissolved, MemberLeftTeam for every member and InviteCodeDeactivated
//	      for an active code are generated
//	REJECTED: team not found, actor is not the owner
//	IDEMPOTENCY: the team is already dissolved
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case team.OwnerID != command.ActorID:
		return core.RejectedDecision(core.ErrNotTeamOwner)
	case team.Dissolved:
		return core.IdempotentDecision()
	}

	var followUps core.DomainEvents
	for _, member := range team.Members {
		followUps = append(followUps, core.BuildMemberLeftTeam(command.TeamID, member.UserID, command.OccurredAt))
	}

	if team.InviteActive {
		followUps = append(followUps, core.BuildInviteCodeDeactivated(command.TeamID, team.InviteCode, command.OccurredAt))
	}

	return core.SuccessDecision(
		core.BuildTeamDissolved(command.TeamID, command.ActorID, command.OccurredAt),
		followUps...,
	)
}

// BuildEventFilter matches the team's lifecycle, members and invite codes.
func BuildEventFilter(teamID core.TeamIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
			core.InviteCodeIssuedEventType,
			core.InviteCodeDeactivatedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		Finalize()
}
