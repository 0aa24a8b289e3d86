package usercredentials

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// UserCredentials is the result of the query. Found is false for unknown emails.
type UserCredentials struct {
	Found          bool
	UserID         core.UserIDString
	DisplayName    string
	PasswordHash   string
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r UserCredentials) GetSequenceNumber() uint {
	return r.SequenceNumber
}
