package core

// UserState is the state of one user projected from their events.
type UserState struct {
	UserID       UserIDString
	SignedUp     bool
	Email        string
	DisplayName  string
	PasswordHash string
	TeamID       TeamIDString // empty when the user is not in a team
}

// ProjectUser replays history for userID. Events of other users are ignored.
func ProjectUser(history DomainEvents, userID UserIDString) UserState {
	s := UserState{UserID: userID}

	for _, event := range history {
		switch e := event.(type) {
		case UserSignedUp:
			if e.UserID == userID {
				s.SignedUp = true
				s.Email = e.Email
				s.DisplayName = e.DisplayName
				s.PasswordHash = e.PasswordHash
			}

		case MemberJoinedTeam:
			if e.UserID == userID {
				s.TeamID = e.TeamID
			}

		case MemberLeftTeam:
			if e.UserID == userID && e.TeamID == s.TeamID {
				s.TeamID = ""
			}
		}
	}

	return s
}

// InTeam is true if the user currently belongs to a team.
func (s UserState) InTeam() bool {
	return s.TeamID != ""
}
