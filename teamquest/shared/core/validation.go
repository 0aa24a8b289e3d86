package core

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	maxDisplayNameLength = 30
	maxTeamNameLength    = 30

	// MinTeamSize is the number of members needed to unlock quests.
	MinTeamSize = 2

	// MaxTeamSize is the upper bound for a team's max members.
	MaxTeamSize = 5

	// InviteCodeLength is the length of an invite code.
	InviteCodeLength = 8

	// MaxInviteCodeAttempts bounds how often a colliding invite code is replaced by a fresh one.
	MaxInviteCodeAttempts = 5
)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeInviteCode trims and upper-cases an invite code.
func NormalizeInviteCode(code string) InviteCodeString {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateEmail expects a normalized, bare address like "aki@example.com".
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateDisplayName expects a trimmed name.
func ValidateDisplayName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLength {
		return ErrInvalidDisplayName
	}

	return nil
}

// ValidateTeamName expects a trimmed name.
func ValidateTeamName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxTeamNameLength {
		return ErrInvalidTeamName
	}

	return nil
}

func ValidateMaxMembers(maxMembers int) error {
	if maxMembers < MinTeamSize || maxMembers > MaxTeamSize {
		return ErrInvalidMaxMembers
	}

	return nil
}

// ValidateInviteCode expects a normalized code.
func ValidateInviteCode(code InviteCodeString) error {
	if code == "" {
		return ErrInviteCodeRequired
	}

	return nil
}
