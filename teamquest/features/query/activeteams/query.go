package activeteams

const (
	queryType = "ActiveTeams"
)

// Query asks for all teams that are active and unlocked. It has no parameters.
type Query struct{}

func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
