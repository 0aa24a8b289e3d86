package usercredentials

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "UserCredentials"
)

// Query looks up the credentials registered for Email.
type Query struct {
	Email string
}

// BuildQuery normalizes email the same way sign-up does.
func BuildQuery(email string) Query {
	return Query{
		Email: core.NormalizeEmail(email),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
