package teamdetail

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project builds the detail view of the queried team.
//
// Query Logic:
//
//	GIVEN: the lifecycle, membership, invite and completion events of the team
//	WHEN: TeamDetail query is executed
//	THEN: TeamDetail struct is returned
//	REJECTED: team not found, requester is not a member
func Project(history core.DomainEvents, query Query, maxSequence uint) (TeamDetail, error) {
	team := core.ProjectTeam(history, query.TeamID)

	switch {
	case !team.Exists:
		return TeamDetail{}, core.ErrTeamNotFound
	case !team.HasMember(query.RequesterID):
		return TeamDetail{}, core.ErrNotTeamMember
	}

	members := make([]MemberInfo, 0, team.MemberCount())
	for _, m := range team.Members {
		members = append(members, MemberInfo{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			IsOwner:     m.IsOwner,
			JoinedAt:    m.JoinedAt,
		})
	}

	rank := team.Rank()
	result := TeamDetail{
		TeamID:            team.TeamID,
		Name:              team.Name,
		OwnerID:           team.OwnerID,
		MaxMembers:        team.MaxMembers,
		Members:           members,
		MemberCount:       team.MemberCount(),
		TotalPoints:       team.TotalPoints,
		Rank:              rank,
		NextRankThreshold: core.NextRankThreshold(rank),
		IsActive:          team.IsActive(),
		IsUnlocked:        team.IsUnlocked(),
		IsOwner:           team.OwnerID == query.RequesterID,
		InviteActive:      team.InviteActive,
		InviteExpiresAt:   team.InviteExpiresAt,
		CreatedAt:         team.CreatedAt,
		SequenceNumber:    maxSequence,
	}

	if result.IsOwner {
		result.InviteCode = team.InviteCode
	}

	return result, nil
}

// BuildEventFilter creates the filter for everything core.ProjectTeam consumes.
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
			core.QuestCompletedEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		Finalize()
}
