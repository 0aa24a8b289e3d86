package signup

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	commandType = "SignUp"
)

// Command represents the intent to register a new user.
type Command struct {
	UserID       core.UserIDString
	Email        string
	DisplayName  string
	PasswordHash string
	OccurredAt   core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand normalizes email and display name. passwordHash must already be a bcrypt hash.
func BuildCommand(
	userID core.UserIDString,
	email string,
	displayName string,
	passwordHash string,
	occurredAt time.Time,
) Command {

	return Command{
		UserID:       userID,
		Email:        core.NormalizeEmail(email),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: passwordHash,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
