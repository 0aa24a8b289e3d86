package signup_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/signup"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
	"github.com/AntonStoeckl/teamquest/testutil/memstore"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	store := memstore.New()
	handler := signup.NewCommandHandler(store)
	userID := uuid.NewString()

	// act
	result, err := handler.Handle(context.Background(), signup.BuildCommand(userID, "aki@example.com", "Aki", passwordHash, time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	signedUp, ok := shell.AppendedEvent[core.UserSignedUp](result)
	require.True(t, ok)
	assert.Equal(t, userID, signedUp.UserID)
	assert.Len(t, store.Events(), 1)
}

func Test_CommandHandler_Handle_SecondSignUpWithSameEmail_RecordsFailure(t *testing.T) {
	// setup
	store := memstore.New()
	handler := signup.NewCommandHandler(store)
	ctx := context.Background()
	_, err := handler.Handle(ctx, signup.BuildCommand(uuid.NewString(), "aki@example.com", "Aki", passwordHash, time.Now()))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, signup.BuildCommand(uuid.NewString(), "aki@example.com", "Other", passwordHash, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrEmailAlreadyRegistered)

	_, ok := shell.AppendedEvent[core.SigningUpFailed](result)
	assert.True(t, ok)
	assert.Len(t, store.Events(), 2)
}

func Test_CommandHandler_Handle_RetriesOnConcurrencyConflict(t *testing.T) {
	// setup
	store := memstore.New()
	store.FailNextAppends(2)
	handler := signup.NewCommandHandler(store, signup.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))

	// act
	result, err := handler.Handle(context.Background(), signup.BuildCommand(uuid.NewString(), "aki@example.com", "Aki", passwordHash, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, store.AppendCalls())
	assert.Equal(t, 3, result.RetryAttempts)
	assert.Equal(t, shell.ErrorTypeNone, result.LastErrorType)
	assert.Len(t, store.Events(), 1)
}

func Test_CommandHandler_Handle_GivesUpAfterMaxAttempts(t *testing.T) {
	// setup
	store := memstore.New()
	store.FailNextAppends(10)
	handler := signup.NewCommandHandler(
		store,
		signup.WithRetryOptions(shell.WithMaxAttempts(3), shell.WithBaseDelay(time.Millisecond)),
	)

	// act
	result, err := handler.Handle(context.Background(), signup.BuildCommand(uuid.NewString(), "aki@example.com", "Aki", passwordHash, time.Now()))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.True(t, result.RetriesExhausted)
	assert.Equal(t, 3, store.AppendCalls())
	assert.Empty(t, store.Events())
}
