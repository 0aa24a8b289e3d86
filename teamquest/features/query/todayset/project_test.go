package todayset_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayset"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func Test_Project_ReturnsTheSetOfTheDate(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	setID := core.DailySetIDFor(teamID, "2025-03-01")
	items := core.BuildDailyItems(setID, []core.Quest{
		{ID: "s1", Name: "Neck roll", Category: core.CategoryStretch, Difficulty: core.DifficultyEasy, Points: 10},
		{ID: "m1", Name: "Calf raise", Category: core.CategoryMuscle, Difficulty: core.DifficultyEasy, Points: 10},
	})
	history := core.DomainEvents{
		core.BuildTeamCreated(teamID, ownerID, "Crew", 5, now),
		core.BuildMemberJoinedTeam(teamID, ownerID, "Aki", true, now),
		core.BuildDailyQuestSetAssigned(core.DailySetIDFor(teamID, "2025-02-28"), teamID, "2025-02-28", core.DifficultyEasy, core.GeneratedByLogic, nil, now.Add(-24*time.Hour)),
		core.BuildDailyQuestSetAssigned(setID, teamID, "2025-03-01", core.DifficultyEasy, core.GeneratedByLogic, items, now),
	}

	// act
	result, err := todayset.Project(history, todayset.BuildQuery(teamID, ownerID, "2025-03-01"), 4)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, setID, result.DailySetID)
	assert.Equal(t, core.GeneratedByLogic, result.GeneratedBy)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Neck roll", result.Items[0].QuestName)
	assert.Equal(t, 1, result.Items[0].SortOrder)
	assert.Equal(t, core.CategoryMuscle, result.Items[1].Category)
}

func Test_Project_NoSet_NotFound(t *testing.T) {
	// arrange
	teamID := uuid.NewString()
	ownerID := uuid.NewString()
	history := core.DomainEvents{
		core.BuildTeamCreated(teamID, ownerID, "Crew", 5, time.Now()),
		core.BuildMemberJoinedTeam(teamID, ownerID, "Aki", true, time.Now()),
	}

	// act
	result, err := todayset.Project(history, todayset.BuildQuery(teamID, ownerID, "2025-03-01"), 0)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Items)
}
