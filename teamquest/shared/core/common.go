package core

import (
	"time"
)

// Alias types instead of full value objects.

// EventTypeString is the discriminator stored with each event.
type EventTypeString = string

// UserIDString identifies a user.
type UserIDString = string

// TeamIDString identifies a team.
type TeamIDString = string

// DailySetIDString identifies a daily quest set.
type DailySetIDString = string

// ItemIDString identifies one item of a daily quest set.
type ItemIDString = string

// NotificationIDString identifies a notification.
type NotificationIDString = string

// InviteCodeString is an 8-character invite code.
type InviteCodeString = string

// SetDateString is a local date in DateLayout.
type SetDateString = string

// OccurredAtTS is when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision,
// which is what PostgreSQL stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
