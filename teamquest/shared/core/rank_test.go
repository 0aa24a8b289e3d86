package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func Test_RankForPoints_Thresholds(t *testing.T) {
	testCases := []struct {
		points int
		want   core.Rank
	}{
		{-5, core.RankF},
		{0, core.RankF},
		{99, core.RankF},
		{100, core.RankE},
		{299, core.RankE},
		{300, core.RankD},
		{599, core.RankD},
		{600, core.RankC},
		{1099, core.RankC},
		{1100, core.RankB},
		{1599, core.RankB},
		{1600, core.RankA},
		{2099, core.RankA},
		{2100, core.RankS},
		{99999, core.RankS},
	}

	for _, tc := range testCases {
		// act
		got := core.RankForPoints(tc.points)

		// assert
		assert.Equal(t, tc.want, got, "points: %d", tc.points)
	}
}

func Test_NextRankThreshold(t *testing.T) {
	testCases := map[core.Rank]int{
		core.RankF:     100,
		core.RankE:     300,
		core.RankD:     600,
		core.RankC:     1100,
		core.RankB:     1600,
		core.RankA:     2100,
		core.RankS:     2100,
		core.Rank("X"): 100,
	}

	for rank, want := range testCases {
		assert.Equal(t, want, core.NextRankThreshold(rank), "rank: %s", rank)
	}
}

func Test_Rank_IsAbove(t *testing.T) {
	assert.True(t, core.RankE.IsAbove(core.RankF))
	assert.True(t, core.RankS.IsAbove(core.RankA))
	assert.False(t, core.RankC.IsAbove(core.RankC))
	assert.False(t, core.RankF.IsAbove(core.RankB))
	assert.True(t, core.RankF.IsAbove(core.Rank("")))
	assert.False(t, core.Rank("").IsValid())
}

func Test_DifficultyForRank(t *testing.T) {
	testCases := map[core.Rank]core.Difficulty{
		core.RankF: core.DifficultyEasy,
		core.RankE: core.DifficultyEasy,
		core.RankD: core.DifficultyNormal,
		core.RankC: core.DifficultyNormal,
		core.RankB: core.DifficultyHard,
		core.RankA: core.DifficultyHard,
		core.RankS: core.DifficultyHard,
	}

	for rank, want := range testCases {
		assert.Equal(t, want, core.DifficultyForRank(rank), "rank: %s", rank)
	}
}

func Test_Difficulty_Points(t *testing.T) {
	assert.Equal(t, 10, core.DifficultyEasy.Points())
	assert.Equal(t, 40, core.DifficultyNormal.Points())
	assert.Equal(t, 100, core.DifficultyHard.Points())
	assert.Equal(t, 0, core.Difficulty("medium").Points())
	assert.False(t, core.Difficulty("medium").IsValid())
}
