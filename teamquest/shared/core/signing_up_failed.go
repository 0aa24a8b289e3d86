package core

import (
	"time"
)

// SigningUpFailedEventType is the event type identifier.
const SigningUpFailedEventType = "SigningUpFailed"

// SigningUpFailed records that a sign-up was rejected, e.g. because the email is taken.
type SigningUpFailed struct {
	Email       string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildSigningUpFailed creates a new SigningUpFailed event.
func BuildSigningUpFailed(
	email string,
	failureInfo string,
	occurredAt time.Time,
) SigningUpFailed {

	return SigningUpFailed{
		Email:       email,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e SigningUpFailed) IsEventType() string {
	return SigningUpFailedEventType
}

func (e SigningUpFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e SigningUpFailed) IsErrorEvent() bool {
	return true
}
