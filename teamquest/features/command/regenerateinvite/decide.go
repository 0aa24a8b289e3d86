package regenerateinvite

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of regenerating an invite code.
//
// Business Rules:
//
//	GIVEN: an active team and its owner
//	WHEN: RegenerateInviteCode command is received
//	THEN: InviteCodeDeactivated for the active code (if any) and InviteCodeIssued are generated
//	REJECTED: team not found or dissolved, actor is not the owner, new code already in use
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case team.Dissolved:
		return core.RejectedDecision(core.ErrTeamDissolved)
	case team.OwnerID != command.ActorID:
		return core.RejectedDecision(core.ErrNotTeamOwner)
	case inviteCodeTaken(history, command.InviteCode):
		return core.RejectedDecision(core.ErrInviteCodeTaken)
	}

	issued := core.BuildInviteCodeIssued(command.TeamID, command.InviteCode, command.InviteExpiresAt, command.OccurredAt)

	if !team.InviteActive {
		return core.SuccessDecision(issued)
	}

	return core.SuccessDecision(
		core.BuildInviteCodeDeactivated(command.TeamID, team.InviteCode, command.OccurredAt),
		issued,
	)
}

func inviteCodeTaken(history core.DomainEvents, code core.InviteCodeString) bool {
	for _, event := range history {
		if e, ok := event.(core.InviteCodeIssued); ok && e.InviteCode == code {
			return true
		}
	}

	return false
}

// BuildEventFilter matches the team's lifecycle and invite codes, and every issue of inviteCode.
func BuildEventFilter(teamID core.TeamIDString, inviteCode core.InviteCodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.InviteCodeIssuedEventType,
			core.InviteCodeDeactivatedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		OrMatching().
		AnyEventTypeOf(core.InviteCodeIssuedEventType).
		AndAnyPredicateOf(eventstore.P("InviteCode", inviteCode)).
		Finalize()
}
