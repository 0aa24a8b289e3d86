package createteam

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "CreateTeam"

	// DefaultMaxMembers is used when no max members are given.
	DefaultMaxMembers = core.MaxTeamSize
)

// Command represents the intent to create a team.
// InviteCode and InviteExpiresAt are set by the CommandHandler.
type Command struct {
	TeamID          core.TeamIDString
	OwnerID         core.UserIDString
	Name            string
	MaxMembers      int
	InviteCode      core.InviteCodeString
	InviteExpiresAt time.Time
	OccurredAt      core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand trims the name. A maxMembers of 0 means DefaultMaxMembers.
func BuildCommand(
	teamID core.TeamIDString,
	ownerID core.UserIDString,
	name string,
	maxMembers int,
	occurredAt time.Time,
) Command {

	if maxMembers == 0 {
		maxMembers = DefaultMaxMembers
	}

	return Command{
		TeamID:     teamID,
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(name),
		MaxMembers: maxMembers,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
