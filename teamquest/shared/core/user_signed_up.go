package core

import (
	"time"
)

// UserSignedUpEventType is the event type identifier.
const UserSignedUpEventType = "UserSignedUp"

// UserSignedUp records that a user created an account.
type UserSignedUp struct {
	UserID       UserIDString
	Email        string
	DisplayName  string
	PasswordHash string
	OccurredAt   OccurredAtTS
}

// BuildUserSignedUp creates a new UserSignedUp event.
func BuildUserSignedUp(
	userID UserIDString,
	email string,
	displayName string,
	passwordHash string,
	occurredAt time.Time,
) UserSignedUp {

	return UserSignedUp{
		UserID:       userID,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e UserSignedUp) IsEventType() string {
	return UserSignedUpEventType
}

func (e UserSignedUp) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e UserSignedUp) IsErrorEvent() bool {
	return false
}
