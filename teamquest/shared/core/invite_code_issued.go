package core

import (
	"time"
)

// InviteCodeIssuedEventType is the event type identifier.
const InviteCodeIssuedEventType = "InviteCodeIssued"

// InviteCodeIssued records that a team got a new invite code. A zero ExpiresAt means it does not expire.
type InviteCodeIssued struct {
	TeamID     TeamIDString
	InviteCode InviteCodeString
	ExpiresAt  time.Time
	OccurredAt OccurredAtTS
}

// BuildInviteCodeIssued creates a new InviteCodeIssued event.
func BuildInviteCodeIssued(
	teamID TeamIDString,
	inviteCode InviteCodeString,
	expiresAt time.Time,
	occurredAt time.Time,
) InviteCodeIssued {

	return InviteCodeIssued{
		TeamID:     teamID,
		InviteCode: inviteCode,
		ExpiresAt:  ToOccurredAt(expiresAt),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e InviteCodeIssued) IsEventType() string {
	return InviteCodeIssuedEventType
}

func (e InviteCodeIssued) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e InviteCodeIssued) IsErrorEvent() bool {
	return false
}
