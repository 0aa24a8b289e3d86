package usercredentials

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project returns the credentials of the first sign-up with the queried email.
//
// Query Logic:
//
//	GIVEN: all UserSignedUp events with the email
//	WHEN: UserCredentials query is executed
//	THEN: UserCredentials struct is returned
//	INCLUDES: the earliest sign-up, later ones never happen because sign-up rejects duplicates
func Project(history core.DomainEvents, query Query, maxSequence uint) UserCredentials {
	for _, event := range history {
		if e, ok := event.(core.UserSignedUp); ok && e.Email == query.Email {
			return UserCredentials{
				Found:          true,
				UserID:         e.UserID,
				DisplayName:    e.DisplayName,
				PasswordHash:   e.PasswordHash,
				SequenceNumber: maxSequence,
			}
		}
	}

	return UserCredentials{SequenceNumber: maxSequence}
}

// BuildEventFilter creates the filter for the sign-up events of email.
func BuildEventFilter(email string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.UserSignedUpEventType).
		AndAnyPredicateOf(eventstore.P("Email", email)).
		Finalize()
}
