package jointeam

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "JoinTeam"
)

// Command represents the intent to join a team with an invite code.
// TeamID is resolved from the invite code by the CommandHandler, it is empty for unknown codes.
type Command struct {
	UserID     core.UserIDString
	InviteCode core.InviteCodeString
	TeamID     core.TeamIDString
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand trims and upper-cases the invite code.
func BuildCommand(userID core.UserIDString, inviteCode string, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		InviteCode: core.NormalizeInviteCode(inviteCode),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
