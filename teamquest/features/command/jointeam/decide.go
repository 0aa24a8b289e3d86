package jointeam

import (
	"fmt"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of joining a team.
//
// Business Rules:
//
//	GIVEN: a signed up user and an invite code
//	WHEN: JoinTeam command is received
//	THEN: MemberJoinedTeam event is generated
//	REJECTED: empty invite code, unknown user
//	ERROR: code does not exist, is deactivated or expired, team is dissolved,
//	       user is in another team, team is full (JoiningTeamFailed)
//	IDEMPOTENCY: the user is already a member of this team
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := core.ValidateInviteCode(command.InviteCode); err != nil {
		return core.RejectedDecision(err)
	}

	user := core.ProjectUser(history, command.UserID)
	if !user.SignedUp {
		return core.RejectedDecision(core.ErrUserNotFound)
	}

	if command.TeamID == "" {
		return failed(command, core.ErrInviteNotFound)
	}

	if user.TeamID == command.TeamID {
		return core.IdempotentDecision()
	}

	team := core.ProjectTeam(history, command.TeamID)

	if err := team.InviteUsable(command.InviteCode, command.OccurredAt); err != nil {
		return failed(command, err)
	}

	if !team.IsActive() {
		return failed(command, core.ErrTeamDissolved)
	}

	if user.InTeam() {
		return failed(command, core.ErrAlreadyInTeam)
	}

	if team.IsFull() {
		return failed(command, core.ErrTeamFull)
	}

	return core.SuccessDecision(
		core.BuildMemberJoinedTeam(command.TeamID, command.UserID, user.DisplayName, false, command.OccurredAt),
	)
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildJoiningTeamFailed(command.UserID, command.InviteCode, command.TeamID, reason.Error(), command.OccurredAt)
	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), reason))
}

// TeamOfInviteCode returns the team that was issued code last, or "" if it was never issued.
func TeamOfInviteCode(history core.DomainEvents, code core.InviteCodeString) core.TeamIDString {
	var teamID core.TeamIDString

	for _, event := range history {
		if e, ok := event.(core.InviteCodeIssued); ok && e.InviteCode == code {
			teamID = e.TeamID
		}
	}

	return teamID
}

// BuildInviteCodeFilter matches every issue of inviteCode.
func BuildInviteCodeFilter(inviteCode core.InviteCodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.InviteCodeIssuedEventType).
		AndAnyPredicateOf(eventstore.P("InviteCode", inviteCode)).
		Finalize()
}

// BuildEventFilter matches the user's registration and memberships, every issue of inviteCode and,
// if teamID is known, the team's lifecycle, members and invite codes.
func BuildEventFilter(userID core.UserIDString, inviteCode core.InviteCodeString, teamID core.TeamIDString) eventstore.Filter {
	builder := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
		).
		AndAnyPredicateOf(eventstore.P("UserID", userID)).
		OrMatching().
		AnyEventTypeOf(core.InviteCodeIssuedEventType).
		AndAnyPredicateOf(eventstore.P("InviteCode", inviteCode))

	if teamID == "" {
		return builder.Finalize()
	}

	return builder.
		OrMatching().
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
