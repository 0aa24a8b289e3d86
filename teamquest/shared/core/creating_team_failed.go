package core

import (
	"time"
)

// CreatingTeamFailedEventType is the event type identifier.
const CreatingTeamFailedEventType = "CreatingTeamFailed"

// CreatingTeamFailed records that creating a team was rejected.
type CreatingTeamFailed struct {
	UserID      UserIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCreatingTeamFailed creates a new CreatingTeamFailed event.
func BuildCreatingTeamFailed(
	userID UserIDString,
	failureInfo string,
	occurredAt time.Time,
) CreatingTeamFailed {

	return CreatingTeamFailed{
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e CreatingTeamFailed) IsEventType() string {
	return CreatingTeamFailedEventType
}

func (e CreatingTeamFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CreatingTeamFailed) IsErrorEvent() bool {
	return true
}
