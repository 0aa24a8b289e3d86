package assigndailyquestset

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "AssignDailyQuestSet"
)

// Command represents the intent to give a team its quests for one local date.
// An empty RequesterID means the system (the daily rollover) asks, which skips the member check.
type Command struct {
	TeamID      core.TeamIDString
	RequesterID core.UserIDString
	SetDate     core.SetDateString
	OccurredAt  core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(
	teamID core.TeamIDString,
	requesterID core.UserIDString,
	setDate core.SetDateString,
	occurredAt time.Time,
) Command {

	return Command{
		TeamID:      teamID,
		RequesterID: requesterID,
		SetDate:     setDate,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
