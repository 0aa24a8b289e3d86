package teamdetail_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/query/teamdetail"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type fixture struct {
	teamID   string
	ownerID  string
	memberID string
	now      time.Time
}

func givenFixture() fixture {
	return fixture{
		teamID:   uuid.NewString(),
		ownerID:  uuid.NewString(),
		memberID: uuid.NewString(),
		now:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f fixture) history() core.DomainEvents {
	set := core.BuildDailyQuestSetAssigned(core.DailySetIDFor(f.teamID, "2025-03-01"), f.teamID, "2025-03-01", core.DifficultyHard, core.GeneratedByLogic, nil, f.now)
	item := core.DailyQuestItem{ItemID: "item-1", QuestID: "h1", QuestName: "Burpees", Points: 100}

	return core.DomainEvents{
		core.BuildTeamCreated(f.teamID, f.ownerID, "Crew", 4, f.now),
		core.BuildMemberJoinedTeam(f.teamID, f.ownerID, "Aki", true, f.now),
		core.BuildInviteCodeIssued(f.teamID, "ABCD2345", time.Time{}, f.now),
		core.BuildMemberJoinedTeam(f.teamID, f.memberID, "Ren", false, f.now.Add(time.Hour)),
		core.BuildQuestCompleted(f.teamID, f.memberID, "Ren", set, item, 100, f.now.Add(2*time.Hour)),
		core.BuildQuestCompleted(f.teamID, f.ownerID, "Aki", set, item, 200, f.now.Add(3*time.Hour)),
	}
}

func Test_Project_OwnerSeesTheInviteCode(t *testing.T) {
	// arrange
	f := givenFixture()

	// act
	result, err := teamdetail.Project(f.history(), teamdetail.BuildQuery(f.teamID, f.ownerID), 6)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Crew", result.Name)
	assert.Equal(t, 4, result.MaxMembers)
	assert.Equal(t, 2, result.MemberCount)
	require.Len(t, result.Members, 2)
	assert.True(t, result.Members[0].IsOwner)
	assert.Equal(t, "Ren", result.Members[1].DisplayName)
	assert.Equal(t, 200, result.TotalPoints)
	assert.Equal(t, core.RankE, result.Rank)
	assert.Equal(t, 300, result.NextRankThreshold)
	assert.True(t, result.IsActive)
	assert.True(t, result.IsUnlocked)
	assert.True(t, result.IsOwner)
	assert.Equal(t, "ABCD2345", result.InviteCode)
	assert.True(t, result.InviteActive)
	assert.Equal(t, uint(6), result.SequenceNumber)
}

func Test_Project_MemberDoesNotSeeTheInviteCode(t *testing.T) {
	// arrange
	f := givenFixture()

	// act
	result, err := teamdetail.Project(f.history(), teamdetail.BuildQuery(f.teamID, f.memberID), 0)

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsOwner)
	assert.Empty(t, result.InviteCode)
	assert.True(t, result.InviteActive)
}

func Test_Project_Rejected(t *testing.T) {
	f := givenFixture()

	testCases := map[string]struct {
		query   teamdetail.Query
		wantErr error
	}{
		"unknown team": {query: teamdetail.BuildQuery(uuid.NewString(), f.ownerID), wantErr: core.ErrTeamNotFound},
		"outsider":     {query: teamdetail.BuildQuery(f.teamID, uuid.NewString()), wantErr: core.ErrNotTeamMember},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// act
			_, err := teamdetail.Project(f.history(), tc.query, 0)

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
