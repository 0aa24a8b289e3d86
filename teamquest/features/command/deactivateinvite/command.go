package deactivateinvite

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "DeactivateInviteCode"
)

// Command represents the intent to deactivate a team's current invite code.
type Command struct {
	TeamID     core.TeamIDString
	ActorID    core.UserIDString
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(teamID core.TeamIDString, actorID core.UserIDString, occurredAt time.Time) Command {
	return Command{
		TeamID:     teamID,
		ActorID:    actorID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
