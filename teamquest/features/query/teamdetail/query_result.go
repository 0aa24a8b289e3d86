package teamdetail

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// MemberInfo is one current member, in join order.
type MemberInfo struct {
	UserID      core.UserIDString
	DisplayName string
	IsOwner     bool
	JoinedAt    time.Time
}

// TeamDetail is the result of the query.
type TeamDetail struct {
	TeamID            core.TeamIDString
	Name              string
	OwnerID           core.UserIDString
	MaxMembers        int
	Members           []MemberInfo
	MemberCount       int
	TotalPoints       int
	Rank              core.Rank
	NextRankThreshold int
	IsActive          bool
	IsUnlocked        bool
	IsOwner           bool
	InviteCode        core.InviteCodeString // empty unless the requester owns the team
	InviteActive      bool
	InviteExpiresAt   time.Time
	CreatedAt         time.Time
	SequenceNumber    uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r TeamDetail) GetSequenceNumber() uint {
	return r.SequenceNumber
}
