package core

import (
	"time"
)

// JoiningTeamFailedEventType is the event type identifier.
const JoiningTeamFailedEventType = "JoiningTeamFailed"

// JoiningTeamFailed records that joining a team by invite code was rejected.
type JoiningTeamFailed struct {
	UserID      UserIDString
	InviteCode  InviteCodeString
	TeamID      TeamIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildJoiningTeamFailed creates a new JoiningTeamFailed event.
func BuildJoiningTeamFailed(
	userID UserIDString,
	inviteCode InviteCodeString,
	teamID TeamIDString,
	failureInfo string,
	occurredAt time.Time,
) JoiningTeamFailed {

	return JoiningTeamFailed{
		UserID:      userID,
		InviteCode:  inviteCode,
		TeamID:      teamID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e JoiningTeamFailed) IsEventType() string {
	return JoiningTeamFailedEventType
}

func (e JoiningTeamFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e JoiningTeamFailed) IsErrorEvent() bool {
	return true
}
