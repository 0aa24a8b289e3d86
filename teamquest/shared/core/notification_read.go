package core

import (
	"time"
)

// NotificationReadEventType is the event type identifier.
const NotificationReadEventType = "NotificationRead"

// NotificationRead records that a member marked a notification as read.
type NotificationRead struct {
	TeamID         TeamIDString
	UserID         UserIDString
	NotificationID NotificationIDString
	OccurredAt     OccurredAtTS
}

// BuildNotificationRead creates a new NotificationRead event.
func BuildNotificationRead(
	teamID TeamIDString,
	userID UserIDString,
	notificationID NotificationIDString,
	occurredAt time.Time,
) NotificationRead {

	return NotificationRead{
		TeamID:         teamID,
		UserID:         userID,
		NotificationID: notificationID,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

func (e NotificationRead) IsEventType() string {
	return NotificationReadEventType
}

func (e NotificationRead) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e NotificationRead) IsErrorEvent() bool {
	return false
}
