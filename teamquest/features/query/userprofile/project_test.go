package userprofile_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/query/userprofile"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func Test_Project_ReturnsProfileOrNotFound(t *testing.T) {
	// arrange
	userID := uuid.NewString()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	history := core.DomainEvents{core.BuildUserSignedUp(userID, "aki@example.com", "Aki", "hash", now)}

	// act
	profile, err := userprofile.Project(history, userprofile.BuildQuery(userID), 1)
	_, missingErr := userprofile.Project(history, userprofile.BuildQuery(uuid.NewString()), 1)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "aki@example.com", profile.Email)
	assert.Equal(t, "Aki", profile.DisplayName)
	assert.Equal(t, now, profile.SignedUpAt)
	assert.ErrorIs(t, missingErr, core.ErrUserNotFound)
}
