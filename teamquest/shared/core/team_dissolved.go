package core

import (
	"time"
)

// TeamDissolvedEventType is the event type identifier.
const TeamDissolvedEventType = "TeamDissolved"

// TeamDissolved records that the owner dissolved the team.
type TeamDissolved struct {
	TeamID     TeamIDString
	OwnerID    UserIDString
	OccurredAt OccurredAtTS
}

// BuildTeamDissolved creates a new TeamDissolved event.
func BuildTeamDissolved(
	teamID TeamIDString,
	ownerID UserIDString,
	occurredAt time.Time,
) TeamDissolved {

	return TeamDissolved{
		TeamID:     teamID,
		OwnerID:    ownerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e TeamDissolved) IsEventType() string {
	return TeamDissolvedEventType
}

func (e TeamDissolved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e TeamDissolved) IsErrorEvent() bool {
	return false
}
