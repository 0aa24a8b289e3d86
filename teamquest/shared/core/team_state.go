package core

import (
	"slices"
	"time"
)

// TeamMember is a current member of a team.
type TeamMember struct {
	UserID      UserIDString
	DisplayName string
	IsOwner     bool
	JoinedAt    time.Time
}

// TeamState is the state of one team projected from its events.
type TeamState struct {
	TeamID          TeamIDString
	Exists          bool
	Dissolved       bool
	OwnerID         UserIDString
	Name            string
	MaxMembers      int
	CreatedAt       time.Time
	Members         []TeamMember // in join order
	InviteCode      InviteCodeString
	InviteActive    bool
	InviteExpiresAt time.Time // zero means the code does not expire
	TotalPoints     int
}

// ProjectTeam replays history for teamID. Events of other teams are ignored.
func ProjectTeam(history DomainEvents, teamID TeamIDString) TeamState {
	s := TeamState{TeamID: teamID}

	for _, event := range history {
		switch e := event.(type) {
		case TeamCreated:
			if e.TeamID == teamID {
				s.Exists = true
				s.OwnerID = e.OwnerID
				s.Name = e.Name
				s.MaxMembers = e.MaxMembers
				s.CreatedAt = e.OccurredAt
			}

		case TeamDissolved:
			if e.TeamID == teamID {
				s.Dissolved = true
			}

		case MemberJoinedTeam:
			if e.TeamID == teamID && !s.HasMember(e.UserID) {
				s.Members = append(s.Members, TeamMember{
					UserID:      e.UserID,
					DisplayName: e.DisplayName,
					IsOwner:     e.IsOwner,
					JoinedAt:    e.OccurredAt,
				})
			}

		case MemberLeftTeam:
			if e.TeamID == teamID {
				s.Members = slices.DeleteFunc(s.Members, func(m TeamMember) bool { return m.UserID == e.UserID })
			}

		case InviteCodeIssued:
			if e.TeamID == teamID {
				s.InviteCode = e.InviteCode
				s.InviteActive = true
				s.InviteExpiresAt = e.ExpiresAt
			}

		case InviteCodeDeactivated:
			if e.TeamID == teamID && e.InviteCode == s.InviteCode {
				s.InviteActive = false
			}

		case QuestCompleted:
			if e.TeamID == teamID {
				s.TotalPoints += e.Points
			}
		}
	}

	return s
}

// IsActive is true for a created team that has not been dissolved.
func (s TeamState) IsActive() bool {
	return s.Exists && !s.Dissolved
}

func (s TeamState) MemberCount() int {
	return len(s.Members)
}

// IsUnlocked is true once the team has enough members for quests.
func (s TeamState) IsUnlocked() bool {
	return s.MemberCount() >= MinTeamSize
}

func (s TeamState) IsFull() bool {
	return s.MemberCount() >= s.MaxMembers
}

func (s TeamState) HasMember(userID UserIDString) bool {
	_, ok := s.Member(userID)
	return ok
}

func (s TeamState) Member(userID UserIDString) (TeamMember, bool) {
	for _, m := range s.Members {
		if m.UserID == userID {
			return m, true
		}
	}

	return TeamMember{}, false
}

func (s TeamState) Rank() Rank {
	return RankForPoints(s.TotalPoints)
}

// InviteUsable reports whether code is the team's current, active and unexpired invite code at now.
func (s TeamState) InviteUsable(code InviteCodeString, now time.Time) error {
	switch {
	case code != s.InviteCode:
		return ErrInviteInactive
	case !s.InviteActive:
		return ErrInviteInactive
	case !s.InviteExpiresAt.IsZero() && !now.Before(s.InviteExpiresAt):
		return ErrInviteExpired
	}

	return nil
}
