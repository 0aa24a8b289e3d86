package todayprogress_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayprogress"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const today = "2025-03-01"

type fixture struct {
	teamID  string
	userIDs []string
	set     core.DailyQuestSetAssigned
	now     time.Time
}

// givenFixture creates a team of four members with an easy set for today.
func givenFixture() fixture {
	teamID := uuid.NewString()
	setID := core.DailySetIDFor(teamID, today)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	items := core.BuildDailyItems(setID, []core.Quest{
		{ID: "s1", Name: "Neck roll", Category: core.CategoryStretch, Difficulty: core.DifficultyEasy, Points: 10, Active: true},
		{ID: "s2", Name: "Wrist circle", Category: core.CategoryStretch, Difficulty: core.DifficultyEasy, Points: 10, Active: true},
		{ID: "m1", Name: "Wall push-up", Category: core.CategoryMuscle, Difficulty: core.DifficultyEasy, Points: 10, Active: true},
		{ID: "m2", Name: "Calf raise", Category: core.CategoryMuscle, Difficulty: core.DifficultyEasy, Points: 10, Active: true},
	})

	return fixture{
		teamID:  teamID,
		userIDs: []string{uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()},
		set:     core.BuildDailyQuestSetAssigned(setID, teamID, today, core.DifficultyEasy, core.GeneratedByLogic, items, now.Add(-4*time.Hour)),
		now:     now,
	}
}

func (f fixture) team() core.DomainEvents {
	history := core.DomainEvents{core.BuildTeamCreated(f.teamID, f.userIDs[0], "Crew", 5, f.now.Add(-72*time.Hour))}
	for i, userID := range f.userIDs {
		history = append(history, core.BuildMemberJoinedTeam(f.teamID, userID, "member", i == 0, f.now.Add(-72*time.Hour)))
	}

	return history
}

func (f fixture) completion(userIndex int, itemIndex int) core.QuestCompleted {
	return core.BuildQuestCompleted(f.teamID, f.userIDs[userIndex], "member", f.set, f.set.Items[itemIndex], 0, f.now)
}

func Test_Project_CountsCompletionsPerItem(t *testing.T) {
	// arrange
	f := givenFixture()
	history := append(
		f.team(),
		f.set,
		f.completion(0, 0),
		f.completion(1, 0),
		f.completion(0, 2),
	)

	// act
	result, err := todayprogress.Project(history, todayprogress.BuildQuery(f.teamID, f.userIDs[0], today), 12)

	// assert
	require.NoError(t, err)

	wantCounts := []int{2, 0, 1, 0}
	wantByMe := []bool{true, false, true, false}
	gotCounts := make([]int, 0, len(result.Items))
	gotByMe := make([]bool, 0, len(result.Items))
	for _, item := range result.Items {
		gotCounts = append(gotCounts, item.CompletedCount)
		gotByMe = append(gotByMe, item.IsCompletedByMe)
		assert.Equal(t, 4, item.MemberCount)
	}

	if diff := cmp.Diff(wantCounts, gotCounts); diff != "" {
		t.Errorf("completed counts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantByMe, gotByMe); diff != "" {
		t.Errorf("completed by me mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 2, result.CheckedInMembers)
	assert.Equal(t, 2, result.CompletedByMe)
	assert.Equal(t, core.DifficultyEasy, result.Difficulty)
	assert.Equal(t, "Easy is fine. Consistency wins.", result.MoodComment)
}

func Test_Project_MoodComment_FollowsCheckIns(t *testing.T) {
	f := givenFixture()

	testCases := map[string]struct {
		completions core.DomainEvents
		want        string
	}{
		"nobody yet": {
			want: "Quiet day so far. Start with a light stretch.",
		},
		"first of four": {
			completions: core.DomainEvents{f.completion(2, 1)},
			want:        "First one done. Keep the momentum going.",
		},
		"one missing": {
			completions: core.DomainEvents{f.completion(0, 0), f.completion(1, 1), f.completion(2, 3)},
			want:        "Only one more to go! Did someone forget? 👀",
		},
		"everyone": {
			completions: core.DomainEvents{f.completion(0, 0), f.completion(1, 0), f.completion(2, 0), f.completion(3, 0)},
			want:        "Everyone checked in today. Great teamwork!",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// arrange
			history := append(append(f.team(), f.set), tc.completions...)

			// act
			result, err := todayprogress.Project(history, todayprogress.BuildQuery(f.teamID, f.userIDs[1], today), 0)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.MoodComment)
		})
	}
}

func Test_Project_DepartedMembersAreNotCounted(t *testing.T) {
	// arrange
	f := givenFixture()
	history := append(
		f.team(),
		f.set,
		f.completion(3, 0),
		core.BuildMemberLeftTeam(f.teamID, f.userIDs[3], f.now.Add(time.Minute)),
	)

	// act
	result, err := todayprogress.Project(history, todayprogress.BuildQuery(f.teamID, f.userIDs[0], today), 0)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.MemberCount)
	assert.Equal(t, 0, result.CheckedInMembers)
	assert.Equal(t, 0, result.Items[0].CompletedCount)
}

func Test_Project_NoSetYet_HasNoItems(t *testing.T) {
	// arrange
	f := givenFixture()

	// act
	result, err := todayprogress.Project(f.team(), todayprogress.BuildQuery(f.teamID, f.userIDs[0], today), 0)

	// assert
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 4, result.MemberCount)
}

func Test_Project_UnknownTeam_IsRejected(t *testing.T) {
	// act
	_, err := todayprogress.Project(core.DomainEvents{}, todayprogress.BuildQuery(uuid.NewString(), uuid.NewString(), today), 0)

	// assert
	assert.ErrorIs(t, err, core.ErrTeamNotFound)
}
