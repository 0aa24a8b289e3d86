package createteam_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/createteam"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func givenUserSignedUp(userID string, name string, at time.Time) core.UserSignedUp {
	return core.BuildUserSignedUp(userID, name+"@example.com", name, "hash", at)
}

func givenCommand(teamID string, ownerID string, at time.Time) createteam.Command {
	command := createteam.BuildCommand(teamID, ownerID, " Morning Crew ", 0, at)
	command.InviteCode = "ABCD1234"

	return command
}

func Test_Decide_Success_CreatesTeamWithOwnerAndInvite(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Now()
	history := core.DomainEvents{givenUserSignedUp(ownerID, "Aki", now.Add(-time.Hour))}

	// act
	result := createteam.Decide(history, givenCommand(teamID, ownerID, now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 3)

	created, ok := result.Events[0].(core.TeamCreated)
	require.True(t, ok)
	assert.Equal(t, "Morning Crew", created.Name)
	assert.Equal(t, createteam.DefaultMaxMembers, created.MaxMembers)
	assert.Equal(t, ownerID, created.OwnerID)

	joined, ok := result.Events[1].(core.MemberJoinedTeam)
	require.True(t, ok)
	assert.True(t, joined.IsOwner)
	assert.Equal(t, "Aki", joined.DisplayName)

	issued, ok := result.Events[2].(core.InviteCodeIssued)
	require.True(t, ok)
	assert.Equal(t, "ABCD1234", issued.InviteCode)
	assert.True(t, issued.ExpiresAt.IsZero())
}

func Test_Decide_Idempotent_WhenTeamAlreadyCreated(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Now()
	history := core.DomainEvents{
		givenUserSignedUp(ownerID, "Aki", now.Add(-time.Hour)),
		core.BuildTeamCreated(teamID, ownerID, "Morning Crew", 5, now.Add(-time.Minute)),
		core.BuildMemberJoinedTeam(teamID, ownerID, "Aki", true, now.Add(-time.Minute)),
	}

	// act
	result := createteam.Decide(history, givenCommand(teamID, ownerID, now))

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenOwnerAlreadyInTeam(t *testing.T) {
	// arrange
	ownerID := uuid.NewString()
	otherTeamID := uuid.NewString()
	now := time.Now()
	history := core.DomainEvents{
		givenUserSignedUp(ownerID, "Aki", now.Add(-time.Hour)),
		core.BuildMemberJoinedTeam(otherTeamID, ownerID, "Aki", false, now.Add(-time.Minute)),
	}

	// act
	result := createteam.Decide(history, givenCommand(uuid.NewString(), ownerID, now))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrAlreadyInTeam)
	require.Len(t, result.Events, 1)
	assert.IsType(t, core.CreatingTeamFailed{}, result.Events[0])
}

func Test_Decide_Success_AfterLeavingPreviousTeam(t *testing.T) {
	// arrange
	ownerID := uuid.NewString()
	oldTeamID := uuid.NewString()
	now := time.Now()
	history := core.DomainEvents{
		givenUserSignedUp(ownerID, "Aki", now.Add(-3*time.Hour)),
		core.BuildMemberJoinedTeam(oldTeamID, ownerID, "Aki", false, now.Add(-2*time.Hour)),
		core.BuildMemberLeftTeam(oldTeamID, ownerID, now.Add(-time.Hour)),
	}

	// act
	result := createteam.Decide(history, givenCommand(uuid.NewString(), ownerID, now))

	// assert
	require.NoError(t, result.HasError())
	assert.Len(t, result.Events, 3)
}

func Test_Decide_Rejected(t *testing.T) {
	ownerID := uuid.NewString()
	now := time.Now()
	signedUp := core.DomainEvents{givenUserSignedUp(ownerID, "Aki", now.Add(-time.Hour))}

	testCases := map[string]struct {
		history core.DomainEvents
		mutate  func(c *createteam.Command)
		wantErr error
	}{
		"empty name": {
			history: signedUp,
			mutate:  func(c *createteam.Command) { c.Name = "" },
			wantErr: core.ErrInvalidTeamName,
		},
		"one member max": {
			history: signedUp,
			mutate:  func(c *createteam.Command) { c.MaxMembers = 1 },
			wantErr: core.ErrInvalidMaxMembers,
		},
		"six members max": {
			history: signedUp,
			mutate:  func(c *createteam.Command) { c.MaxMembers = 6 },
			wantErr: core.ErrInvalidMaxMembers,
		},
		"unknown owner": {
			history: nil,
			mutate:  func(_ *createteam.Command) {},
			wantErr: core.ErrUserNotFound,
		},
		"invite code in use": {
			history: append(core.DomainEvents{
				core.BuildInviteCodeIssued(uuid.NewString(), "ABCD1234", time.Time{}, now.Add(-time.Hour)),
			}, signedUp...),
			mutate:  func(_ *createteam.Command) {},
			wantErr: core.ErrInviteCodeTaken,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// arrange
			command := givenCommand(uuid.NewString(), ownerID, now)
			tc.mutate(&command)

			// act
			result := createteam.Decide(tc.history, command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.wantErr)
			assert.Empty(t, result.Events)
		})
	}
}
