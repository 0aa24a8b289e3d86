package userprofile

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Project returns the profile of the queried user, or core.ErrUserNotFound.
func Project(history core.DomainEvents, query Query, maxSequence uint) (UserProfile, error) {
	for _, event := range history {
		if e, ok := event.(core.UserSignedUp); ok && e.UserID == query.UserID {
			return UserProfile{
				UserID:         e.UserID,
				Email:          e.Email,
				DisplayName:    e.DisplayName,
				SignedUpAt:     e.OccurredAt,
				SequenceNumber: maxSequence,
			}, nil
		}
	}

	return UserProfile{}, core.ErrUserNotFound
}

// BuildEventFilter creates the filter for the sign-up of userID.
func BuildEventFilter(userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.UserSignedUpEventType).
		AndAnyPredicateOf(eventstore.P("UserID", userID)).
		Finalize()
}
