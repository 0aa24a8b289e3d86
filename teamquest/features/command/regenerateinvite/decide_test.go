package regenerateinvite_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/regenerateinvite"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func givenTeam(teamID string, ownerID string, code string, at time.Time) core.DomainEvents {
	return core.DomainEvents{
		core.BuildTeamCreated(teamID, ownerID, "Crew", 5, at),
		core.BuildMemberJoinedTeam(teamID, ownerID, "Aki", true, at),
		core.BuildInviteCodeIssued(teamID, code, time.Time{}, at),
	}
}

func givenCommand(teamID string, actorID string, code string, at time.Time) regenerateinvite.Command {
	command := regenerateinvite.BuildCommand(teamID, actorID, at)
	command.InviteCode = code

	return command
}

func Test_Decide_Success_DeactivatesOldAndIssuesNewCode(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Now()
	history := givenTeam(teamID, ownerID, "OLD00001", now.Add(-time.Hour))

	// act
	result := regenerateinvite.Decide(history, givenCommand(teamID, ownerID, "NEW00001", now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 2)

	deactivated, ok := result.Events[0].(core.InviteCodeDeactivated)
	require.True(t, ok)
	assert.Equal(t, "OLD00001", deactivated.InviteCode)

	issued, ok := result.Events[1].(core.InviteCodeIssued)
	require.True(t, ok)
	assert.Equal(t, "NEW00001", issued.InviteCode)
}

func Test_Decide_Success_OnlyIssues_WhenCodeWasDeactivated(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Now()
	history := append(givenTeam(teamID, ownerID, "OLD00001", now.Add(-time.Hour)),
		core.BuildInviteCodeDeactivated(teamID, "OLD00001", now.Add(-time.Minute)),
	)

	// act
	result := regenerateinvite.Decide(history, givenCommand(teamID, ownerID, "NEW00001", now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)
	assert.IsType(t, core.InviteCodeIssued{}, result.Events[0])
}

func Test_Decide_Rejected(t *testing.T) {
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Now()
	team := givenTeam(teamID, ownerID, "OLD00001", now.Add(-time.Hour))

	testCases := map[string]struct {
		history core.DomainEvents
		command regenerateinvite.Command
		wantErr error
	}{
		"unknown team": {
			history: nil,
			command: givenCommand(teamID, ownerID, "NEW00001", now),
			wantErr: core.ErrTeamNotFound,
		},
		"dissolved team": {
			history: append(givenTeam(teamID, ownerID, "OLD00001", now.Add(-time.Hour)), core.BuildTeamDissolved(teamID, ownerID, now)),
			command: givenCommand(teamID, ownerID, "NEW00001", now),
			wantErr: core.ErrTeamDissolved,
		},
		"not the owner": {
			history: team,
			command: givenCommand(teamID, uuid.NewString(), "NEW00001", now),
			wantErr: core.ErrNotTeamOwner,
		},
		"code collision": {
			history: team,
			command: givenCommand(teamID, ownerID, "OLD00001", now),
			wantErr: core.ErrInviteCodeTaken,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// act
			result := regenerateinvite.Decide(tc.history, tc.command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.wantErr)
			assert.Empty(t, result.Events)
		})
	}
}
