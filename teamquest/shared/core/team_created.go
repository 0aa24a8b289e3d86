package core

import (
	"time"
)

// TeamCreatedEventType is the event type identifier.
const TeamCreatedEventType = "TeamCreated"

// TeamCreated records that a user founded a team and became its owner.
type TeamCreated struct {
	TeamID     TeamIDString
	OwnerID    UserIDString
	Name       string
	MaxMembers int
	OccurredAt OccurredAtTS
}

// BuildTeamCreated creates a new TeamCreated event.
func BuildTeamCreated(
	teamID TeamIDString,
	ownerID UserIDString,
	name string,
	maxMembers int,
	occurredAt time.Time,
) TeamCreated {

	return TeamCreated{
		TeamID:     teamID,
		OwnerID:    ownerID,
		Name:       name,
		MaxMembers: maxMembers,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e TeamCreated) IsEventType() string {
	return TeamCreatedEventType
}

func (e TeamCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e TeamCreated) IsErrorEvent() bool {
	return false
}
