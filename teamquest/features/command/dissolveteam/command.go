package dissolveteam

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "DissolveTeam"
)

// Command represents the intent to dissolve a team.
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
