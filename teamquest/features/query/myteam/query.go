package myteam

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "MyTeam"
)

// Query asks for the current team of UserID.
type Query struct {
	UserID core.UserIDString
}

func BuildQuery(userID core.UserIDString) Query {
	return Query{UserID: userID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
