package core

import (
	"errors"
)

// Validation errors.
var (
	ErrInvalidEmail        = errors.New("email address is not valid")
	ErrInvalidDisplayName  = errors.New("display name must be 1 to 30 characters")
	ErrInvalidTeamName     = errors.New("team name must be 1 to 30 characters")
	ErrInvalidMaxMembers   = errors.New("max members must be between 2 and 5")
	ErrInviteCodeRequired  = errors.New("invite code is required")
	ErrInvalidQuest        = errors.New("quest is not valid")
	ErrInvalidNotification = errors.New("notification id is not valid")
)

// Business rule violations.
var (
	ErrEmailAlreadyRegistered     = errors.New("email address is already registered")
	ErrUserNotFound               = errors.New("user does not exist")
	ErrAlreadyInTeam              = errors.New("user already belongs to a team")
	ErrInviteNotFound             = errors.New("invite code does not exist")
	ErrInviteInactive             = errors.New("invite code has been deactivated")
	ErrInviteExpired              = errors.New("invite code has expired")
	ErrInviteCodeTaken            = errors.New("invite code is already in use")
	ErrInviteCodeGenerationFailed = errors.New("could not generate a unique invite code")
	ErrTeamNotFound               = errors.New("team does not exist")
	ErrTeamDissolved              = errors.New("team has been dissolved")
	ErrTeamFull                   = errors.New("team is full")
	ErrTeamLocked                 = errors.New("quests unlock once the team has at least 2 members")
	ErrNotTeamOwner               = errors.New("only the team owner may do this")
	ErrNotTeamMember              = errors.New("user is not a member of this team")
	ErrNotEnoughQuests            = errors.New("catalog has fewer than 4 active quests for this difficulty")
	ErrDailySetNotFound           = errors.New("no quest set has been assigned for today")
	ErrQuestItemNotFound          = errors.New("quest item does not belong to today's set of this team")
	ErrNotificationNotFound       = errors.New("notification does not exist")
)
