package markread

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "MarkNotificationRead"
)

// Command represents the intent of a member to mark one notification of their team as read.
type Command struct {
	TeamID         core.TeamIDString
	UserID         core.UserIDString
	NotificationID core.NotificationIDString
	OccurredAt     core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(
	teamID core.TeamIDString,
	userID core.UserIDString,
	notificationID core.NotificationIDString,
	occurredAt time.Time,
) Command {

	return Command{
		TeamID:         teamID,
		UserID:         userID,
		NotificationID: strings.ToLower(strings.TrimSpace(notificationID)),
		OccurredAt:     core.ToOccurredAt(occurredAt),
	}
}
