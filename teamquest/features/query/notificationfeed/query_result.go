package notificationfeed

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Entry is one notification of the feed.
type Entry struct {
	NotificationID core.NotificationIDString
	Type           core.NotificationType
	Message        string
	ActorID        core.UserIDString
	CreatedAt      time.Time
	IsRead         bool
}

// NotificationFeed is the result of the query. UnreadCount covers all notifications, not only Entries.
type NotificationFeed struct {
	Entries        []Entry
	UnreadCount    int
	Total          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r NotificationFeed) GetSequenceNumber() uint {
	return r.SequenceNumber
}
