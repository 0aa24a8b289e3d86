package createteam

import (
	"fmt"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type state struct {
	teamExists      bool
	owner           core.UserState
	inviteCodeTaken bool
}

// Decide implements the business logic of creating a team.
//
// Business Rules:
//
//	GIVEN: a signed up user without a team
//	WHEN: CreateTeam command is received
//	THEN: TeamCreated, MemberJoinedTeam (owner) and InviteCodeIssued events are generated
//	REJECTED: invalid name or max members, unknown user, invite code already in use
//	ERROR: user already belongs to a team (CreatingTeamFailed)
//	IDEMPOTENCY: a team with this TeamID already exists
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command)

	if s.teamExists {
		return core.IdempotentDecision()
	}

	if err := core.ValidateTeamName(command.Name); err != nil {
		return core.RejectedDecision(err)
	}

	if err := core.ValidateMaxMembers(command.MaxMembers); err != nil {
		return core.RejectedDecision(err)
	}

	if !s.owner.SignedUp {
		return core.RejectedDecision(core.ErrUserNotFound)
	}

	if s.owner.InTeam() {
		event := core.BuildCreatingTeamFailed(command.OwnerID, core.ErrAlreadyInTeam.Error(), command.OccurredAt)
		return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), core.ErrAlreadyInTeam))
	}

	if s.inviteCodeTaken {
		return core.RejectedDecision(core.ErrInviteCodeTaken)
	}

	return core.SuccessDecision(
		core.BuildTeamCreated(command.TeamID, command.OwnerID, command.Name, command.MaxMembers, command.OccurredAt),
		core.BuildMemberJoinedTeam(command.TeamID, command.OwnerID, s.owner.DisplayName, true, command.OccurredAt),
		core.BuildInviteCodeIssued(command.TeamID, command.InviteCode, command.InviteExpiresAt, command.OccurredAt),
	)
}

func project(history core.DomainEvents, command Command) state {
	s := state{owner: core.ProjectUser(history, command.OwnerID)}

	for _, event := range history {
		switch e := event.(type) {
		case core.TeamCreated:
			if e.TeamID == command.TeamID {
				s.teamExists = true
			}

		case core.InviteCodeIssued:
			if e.InviteCode == command.InviteCode {
				s.inviteCodeTaken = true
			}
		}
	}

	return s
}

// BuildEventFilter matches the owner's registration and memberships, the team itself,
// and every team that was ever issued inviteCode.
func BuildEventFilter(teamID core.TeamIDString, ownerID core.UserIDString, inviteCode core.InviteCodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
		).
		AndAnyPredicateOf(eventstore.P("UserID", ownerID)).
		OrMatching().
		AnyEventTypeOf(core.TeamCreatedEventType).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		OrMatching().
		AnyEventTypeOf(core.InviteCodeIssuedEventType).
		AndAnyPredicateOf(eventstore.P("InviteCode", inviteCode)).
		Finalize()
}
