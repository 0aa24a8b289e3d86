package core

import (
	"time"
)

// TeamRankedUpEventType is the event type identifier.
const TeamRankedUpEventType = "TeamRankedUp"

// TeamRankedUp records that a completion pushed the team total over a rank threshold.
type TeamRankedUp struct {
	TeamID      TeamIDString
	From        Rank
	To          Rank
	TotalPoints int
	OccurredAt  OccurredAtTS
}

// BuildTeamRankedUp creates a new TeamRankedUp event.
func BuildTeamRankedUp(
	teamID TeamIDString,
	from Rank,
	to Rank,
	totalPoints int,
	occurredAt time.Time,
) TeamRankedUp {

	return TeamRankedUp{
		TeamID:      teamID,
		From:        from,
		To:          to,
		TotalPoints: totalPoints,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e TeamRankedUp) IsEventType() string {
	return TeamRankedUpEventType
}

func (e TeamRankedUp) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e TeamRankedUp) IsErrorEvent() bool {
	return false
}
