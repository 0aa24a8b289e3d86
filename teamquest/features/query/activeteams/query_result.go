package activeteams

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// ActiveTeams lists team IDs in creation order.
type ActiveTeams struct {
	TeamIDs        []core.TeamIDString
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r ActiveTeams) GetSequenceNumber() uint {
	return r.SequenceNumber
}
