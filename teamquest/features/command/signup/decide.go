package signup

import (
	"fmt"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type state struct {
	userExists bool
	emailTaken bool
}

// Decide implements the business logic of signing up.
//
// Business Rules:
//
//	GIVEN: a valid email and display name
//	WHEN: SignUp command is received
//	THEN: UserSignedUp event is generated
//	REJECTED: invalid email or display name, nothing is recorded
//	ERROR: email is already registered (SigningUpFailed)
//	IDEMPOTENCY: the user with this UserID already exists
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := core.ValidateEmail(command.Email); err != nil {
		return core.RejectedDecision(err)
	}

	if err := core.ValidateDisplayName(command.DisplayName); err != nil {
		return core.RejectedDecision(err)
	}

	s := project(history, command.UserID, command.Email)

	if s.userExists {
		return core.IdempotentDecision()
	}

	if s.emailTaken {
		event := core.BuildSigningUpFailed(command.Email, core.ErrEmailAlreadyRegistered.Error(), command.OccurredAt)
		return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), core.ErrEmailAlreadyRegistered))
	}

	return core.SuccessDecision(
		core.BuildUserSignedUp(
			command.UserID,
			command.Email,
			command.DisplayName,
			command.PasswordHash,
			command.OccurredAt,
		),
	)
}

func project(history core.DomainEvents, userID core.UserIDString, email string) state {
	var s state

	for _, event := range history {
		if e, ok := event.(core.UserSignedUp); ok {
			if e.UserID == userID {
				s.userExists = true
			} else if e.Email == email {
				s.emailTaken = true
			}
		}
	}

	return s
}

// BuildEventFilter matches all registrations with this UserID or this email.
func BuildEventFilter(userID core.UserIDString, email string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID),
			eventstore.P("Email", email),
		).
		Finalize()
}
