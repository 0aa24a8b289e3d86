package userprofile

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "UserProfile"
)

// Query asks for the profile of UserID.
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
