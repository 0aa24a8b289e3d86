package core

import (
	"time"
)

// InviteCodeDeactivatedEventType is the event type identifier.
const InviteCodeDeactivatedEventType = "InviteCodeDeactivated"

// InviteCodeDeactivated records that an invite code can no longer be used.
type InviteCodeDeactivated struct {
	TeamID     TeamIDString
	InviteCode InviteCodeString
	OccurredAt OccurredAtTS
}

// BuildInviteCodeDeactivated creates a new InviteCodeDeactivated event.
func BuildInviteCodeDeactivated(
	teamID TeamIDString,
	inviteCode InviteCodeString,
	occurredAt time.Time,
) InviteCodeDeactivated {

	return InviteCodeDeactivated{
		TeamID:     teamID,
		InviteCode: inviteCode,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e InviteCodeDeactivated) IsEventType() string {
	return InviteCodeDeactivatedEventType
}

func (e InviteCodeDeactivated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e InviteCodeDeactivated) IsErrorEvent() bool {
	return false
}
