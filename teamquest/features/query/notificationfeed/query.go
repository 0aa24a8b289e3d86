package notificationfeed

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "NotificationFeed"

	DefaultLimit = 50
	MaxLimit     = 100
)

// Query asks for the newest Limit notifications of TeamID as seen by RequesterID.
type Query struct {
	TeamID      core.TeamIDString
	RequesterID core.UserIDString
	Limit       int
}

// BuildQuery replaces a non-positive limit with DefaultLimit and caps it at MaxLimit.
func BuildQuery(teamID core.TeamIDString, requesterID core.UserIDString, limit int) Query {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Query{
		TeamID:      teamID,
		RequesterID: requesterID,
		Limit:       limit,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
