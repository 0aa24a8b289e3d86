package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a business event that has occurred in the domain.
type DomainEvent interface {
	IsEventType() string
	HasOccurredAt() time.Time
	// IsErrorEvent is true for events that record a rejected request, e.g. JoiningTeamFailed.
	IsErrorEvent() bool
}
