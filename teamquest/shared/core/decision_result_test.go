package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func Test_DecisionResult_Outcomes(t *testing.T) {
	// arrange
	now := time.Now()
	someErr := errors.New("nope")
	event := core.BuildTeamDissolved("team-1", "user-1", now)
	failure := core.BuildCreatingTeamFailed("user-1", "nope", now)

	// act
	idempotent := core.IdempotentDecision()
	success := core.SuccessDecision(event, core.BuildMemberLeftTeam("team-1", "user-1", now))
	failed := core.ErrorDecision(failure, someErr)
	rejected := core.RejectedDecision(someErr)

	// assert
	assert.True(t, idempotent.IsIdempotent())
	assert.False(t, idempotent.HasEventToAppend())
	assert.NoError(t, idempotent.HasError())

	assert.True(t, success.HasEventToAppend())
	assert.Len(t, success.Events, 2)
	assert.NoError(t, success.HasError())

	assert.True(t, failed.HasEventToAppend())
	assert.ErrorIs(t, failed.HasError(), someErr)
	assert.True(t, failed.Events[0].IsErrorEvent())

	assert.False(t, rejected.HasEventToAppend())
	assert.ErrorIs(t, rejected.HasError(), someErr)
}

func Test_LocalDate_UsesLocation(t *testing.T) {
	// arrange
	tokyo, err := time.LoadLocation(core.DefaultTimezone)
	if err != nil {
		t.Skip("tzdata not available")
	}
	utcEvening := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

	// act + assert
	assert.Equal(t, "2025-03-02", core.LocalDate(utcEvening, tokyo))
	assert.Equal(t, "2025-03-01", core.LocalDate(utcEvening, nil))
}
