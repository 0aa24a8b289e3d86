package jointeam_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/jointeam"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const inviteCode = "JOIN2025"

type fixture struct {
	teamID  string
	ownerID string
	userID  string
	now     time.Time
}

func givenFixture() fixture {
	return fixture{
		teamID:  uuid.NewString(),
		ownerID: uuid.NewString(),
		userID:  uuid.NewString(),
		now:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f fixture) teamWithInvite(maxMembers int, expiresAt time.Time) core.DomainEvents {
	return core.DomainEvents{
		core.BuildUserSignedUp(f.ownerID, "aki@example.com", "Aki", "hash", f.now.Add(-3*time.Hour)),
		core.BuildUserSignedUp(f.userID, "ren@example.com", "Ren", "hash", f.now.Add(-3*time.Hour)),
		core.BuildTeamCreated(f.teamID, f.ownerID, "Crew", maxMembers, f.now.Add(-2*time.Hour)),
		core.BuildMemberJoinedTeam(f.teamID, f.ownerID, "Aki", true, f.now.Add(-2*time.Hour)),
		core.BuildInviteCodeIssued(f.teamID, inviteCode, expiresAt, f.now.Add(-2*time.Hour)),
	}
}

func (f fixture) command() jointeam.Command {
	command := jointeam.BuildCommand(f.userID, " join2025 ", f.now)
	command.TeamID = f.teamID

	return command
}

func Test_Decide_Success_WhenInviteIsUsable(t *testing.T) {
	// arrange
	f := givenFixture()

	// act
	result := jointeam.Decide(f.teamWithInvite(5, time.Time{}), f.command())

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Events, 1)

	joined, ok := result.Events[0].(core.MemberJoinedTeam)
	require.True(t, ok)
	assert.Equal(t, f.teamID, joined.TeamID)
	assert.Equal(t, "Ren", joined.DisplayName)
	assert.False(t, joined.IsOwner)
}

func Test_Decide_Idempotent_WhenAlreadyMemberOfThisTeam(t *testing.T) {
	// arrange
	f := givenFixture()
	history := append(f.teamWithInvite(5, time.Time{}),
		core.BuildMemberJoinedTeam(f.teamID, f.userID, "Ren", false, f.now.Add(-time.Hour)),
		core.BuildInviteCodeDeactivated(f.teamID, inviteCode, f.now.Add(-time.Minute)),
	)

	// act
	result := jointeam.Decide(history, f.command())

	// assert
	assert.True(t, result.IsIdempotent())
}

//nolint:funlen
func Test_Decide_Errors(t *testing.T) {
	f := givenFixture()
	otherTeamID := uuid.NewString()
	thirdUserID := uuid.NewString()

	testCases := map[string]struct {
		history core.DomainEvents
		teamID  string
		wantErr error
	}{
		"unknown code": {
			history: f.teamWithInvite(5, time.Time{}),
			teamID:  "",
			wantErr: core.ErrInviteNotFound,
		},
		"deactivated code": {
			history: append(f.teamWithInvite(5, time.Time{}),
				core.BuildInviteCodeDeactivated(f.teamID, inviteCode, f.now.Add(-time.Hour)),
			),
			teamID:  f.teamID,
			wantErr: core.ErrInviteInactive,
		},
		"replaced code": {
			history: append(f.teamWithInvite(5, time.Time{}),
				core.BuildInviteCodeIssued(f.teamID, "NEWCODE1", time.Time{}, f.now.Add(-time.Hour)),
			),
			teamID:  f.teamID,
			wantErr: core.ErrInviteInactive,
		},
		"expired code": {
			history: f.teamWithInvite(5, f.now.Add(-time.Minute)),
			teamID:  f.teamID,
			wantErr: core.ErrInviteExpired,
		},
		"dissolved team with active code": {
			history: append(f.teamWithInvite(5, time.Time{}),
				core.BuildTeamDissolved(f.teamID, f.ownerID, f.now.Add(-time.Hour)),
			),
			teamID:  f.teamID,
			wantErr: core.ErrTeamDissolved,
		},
		"user in another team": {
			history: append(f.teamWithInvite(5, time.Time{}),
				core.BuildMemberJoinedTeam(otherTeamID, f.userID, "Ren", true, f.now.Add(-time.Hour)),
			),
			teamID:  f.teamID,
			wantErr: core.ErrAlreadyInTeam,
		},
		"team full": {
			history: append(f.teamWithInvite(2, time.Time{}),
				core.BuildMemberJoinedTeam(f.teamID, thirdUserID, "Mio", false, f.now.Add(-time.Hour)),
			),
			teamID:  f.teamID,
			wantErr: core.ErrTeamFull,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// arrange
			command := f.command()
			command.TeamID = tc.teamID

			// act
			result := jointeam.Decide(tc.history, command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.wantErr)
			require.Len(t, result.Events, 1)

			failed, ok := result.Events[0].(core.JoiningTeamFailed)
			require.True(t, ok)
			assert.Equal(t, inviteCode, failed.InviteCode)
			assert.Equal(t, tc.wantErr.Error(), failed.FailureInfo)
		})
	}
}

func Test_Decide_Rejected_WhenUserUnknownOrCodeEmpty(t *testing.T) {
	// arrange
	f := givenFixture()
	unknownUser := jointeam.BuildCommand(uuid.NewString(), inviteCode, f.now)
	emptyCode := jointeam.BuildCommand(f.userID, "  ", f.now)

	// act
	unknownResult := jointeam.Decide(f.teamWithInvite(5, time.Time{}), unknownUser)
	emptyResult := jointeam.Decide(f.teamWithInvite(5, time.Time{}), emptyCode)

	// assert
	assert.ErrorIs(t, unknownResult.HasError(), core.ErrUserNotFound)
	assert.Empty(t, unknownResult.Events)
	assert.ErrorIs(t, emptyResult.HasError(), core.ErrInviteCodeRequired)
	assert.Empty(t, emptyResult.Events)
}

func Test_TeamOfInviteCode_ReturnsLastIssuer(t *testing.T) {
	// arrange
	f := givenFixture()

	// act
	found := jointeam.TeamOfInviteCode(f.teamWithInvite(5, time.Time{}), inviteCode)
	missing := jointeam.TeamOfInviteCode(f.teamWithInvite(5, time.Time{}), "NOPE0000")

	// assert
	assert.Equal(t, f.teamID, found)
	assert.Empty(t, missing)
}
