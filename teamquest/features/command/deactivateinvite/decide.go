package deactivateinvite

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of deactivating an invite code.
//
// Business Rules:
//
//	GIVEN: an active team and its owner
//	WHEN: DeactivateInviteCode command is received
//	THEN: InviteCodeDeactivated event is generated for the current code
//	REJECTED: team not found or dissolved, actor is not the owner
//	IDEMPOTENCY: the current code is already inactive
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case team.Dissolved:
		return core.RejectedDecision(core.ErrTeamDissolved)
	case team.OwnerID != command.ActorID:
		return core.RejectedDecision(core.ErrNotTeamOwner)
	case !team.InviteActive:
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildInviteCodeDeactivated(command.TeamID, team.InviteCode, command.OccurredAt),
	)
}

// BuildEventFilter matches the team's lifecycle and invite codes.
func BuildEventFilter(teamID core.TeamIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.InviteCodeIssuedEventType,
			core.InviteCodeDeactivatedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		Finalize()
}
