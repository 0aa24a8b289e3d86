package core

import (
	"time"
)

// MemberLeftTeamEventType is the event type identifier.
const MemberLeftTeamEventType = "MemberLeftTeam"

// MemberLeftTeam records that a user stopped being a member, currently only when the team is dissolved.
type MemberLeftTeam struct {
	TeamID     TeamIDString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildMemberLeftTeam creates a new MemberLeftTeam event.
func BuildMemberLeftTeam(
	teamID TeamIDString,
	userID UserIDString,
	occurredAt time.Time,
) MemberLeftTeam {

	return MemberLeftTeam{
		TeamID:     teamID,
		UserID:     userID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e MemberLeftTeam) IsEventType() string {
	return MemberLeftTeamEventType
}

func (e MemberLeftTeam) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e MemberLeftTeam) IsErrorEvent() bool {
	return false
}
