package todaymvp

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// TodayMVP is the result of the query. Found is false when nobody completed anything.
type TodayMVP struct {
	Found            bool
	UserID           core.UserIDString
	DisplayName      string
	TotalPoints      int
	FirstCompletedAt time.Time
	SequenceNumber   uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r TodayMVP) GetSequenceNumber() uint {
	return r.SequenceNumber
}
