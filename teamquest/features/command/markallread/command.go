package markallread

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "MarkAllNotificationsRead"
)

// Command represents the intent of a member to mark every notification of their team as read.
type Command struct {
	TeamID     core.TeamIDString
	UserID     core.UserIDString
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(teamID core.TeamIDString, userID core.UserIDString, occurredAt time.Time) Command {
	return Command{
		TeamID:     teamID,
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
