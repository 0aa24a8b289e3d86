package completequest

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "CompleteQuest"
)

// Command represents the intent of a member to complete one item of today's set.
type Command struct {
	TeamID     core.TeamIDString
	UserID     core.UserIDString
	ItemID     core.ItemIDString
	SetDate    core.SetDateString
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(
	teamID core.TeamIDString,
	userID core.UserIDString,
	itemID core.ItemIDString,
	setDate core.SetDateString,
	occurredAt time.Time,
) Command {

	return Command{
		TeamID:     teamID,
		UserID:     userID,
		ItemID:     itemID,
		SetDate:    setDate,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
