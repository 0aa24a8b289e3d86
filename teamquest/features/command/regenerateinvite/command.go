package regenerateinvite

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "RegenerateInviteCode"
)

// Command represents the intent to replace a team's invite code.
// InviteCode and InviteExpiresAt are set by the CommandHandler.
type Command struct {
	TeamID          core.TeamIDString
	ActorID         core.UserIDString
	InviteCode      core.InviteCodeString
	InviteExpiresAt time.Time
	OccurredAt      core.OccurredAtTS
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
