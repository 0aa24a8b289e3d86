package userprofile

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// UserProfile is the public part of a user's account.
type UserProfile struct {
	UserID         core.UserIDString
	Email          string
	DisplayName    string
	SignedUpAt     time.Time
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r UserProfile) GetSequenceNumber() uint {
	return r.SequenceNumber
}
