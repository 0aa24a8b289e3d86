package myteam

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// MyTeam is the membership of one user. TeamID is empty when the user is in no team.
type MyTeam struct {
	TeamID         core.TeamIDString
	IsOwner        bool
	JoinedAt       time.Time
	SequenceNumber uint
}

// InTeam reports whether the user currently belongs to a team.
func (r MyTeam) InTeam() bool {
	return r.TeamID != ""
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r MyTeam) GetSequenceNumber() uint {
	return r.SequenceNumber
}
