package core

import (
	"time"
)

// CompletingQuestFailedEventType is the event type identifier.
const CompletingQuestFailedEventType = "CompletingQuestFailed"

// CompletingQuestFailed records that completing a quest item was rejected.
type CompletingQuestFailed struct {
	TeamID      TeamIDString
	UserID      UserIDString
	ItemID      ItemIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCompletingQuestFailed creates a new CompletingQuestFailed event.
func BuildCompletingQuestFailed(
	teamID TeamIDString,
	userID UserIDString,
	itemID ItemIDString,
	failureInfo string,
	occurredAt time.Time,
) CompletingQuestFailed {

	return CompletingQuestFailed{
		TeamID:      teamID,
		UserID:      userID,
		ItemID:      itemID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e CompletingQuestFailed) IsEventType() string {
	return CompletingQuestFailedEventType
}

func (e CompletingQuestFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e CompletingQuestFailed) IsErrorEvent() bool {
	return true
}
