package core

import (
	"time"
)

// MemberJoinedTeamEventType is the event type identifier.
const MemberJoinedTeamEventType = "MemberJoinedTeam"

// MemberJoinedTeam records that a user became a member of a team. The owner joins together with TeamCreated.
type MemberJoinedTeam struct {
	TeamID      TeamIDString
	UserID      UserIDString
	DisplayName string
	IsOwner     bool
	OccurredAt  OccurredAtTS
}

// BuildMemberJoinedTeam creates a new MemberJoinedTeam event.
func BuildMemberJoinedTeam(
	teamID TeamIDString,
	userID UserIDString,
	displayName string,
	isOwner bool,
	occurredAt time.Time,
) MemberJoinedTeam {

	return MemberJoinedTeam{
		TeamID:      teamID,
		UserID:      userID,
		DisplayName: displayName,
		IsOwner:     isOwner,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e MemberJoinedTeam) IsEventType() string {
	return MemberJoinedTeamEventType
}

func (e MemberJoinedTeam) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberJoinedTeam) IsErrorEvent() bool {
	return false
}
