package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func Test_TeamMoodComment(t *testing.T) {
	testCases := []struct {
		name       string
		completed  int
		members    int
		difficulty core.Difficulty
		want       string
	}{
		{"no members", 0, 0, core.DifficultyEasy, "Keep stacking small wins today."},
		{"everyone", 3, 3, core.DifficultyEasy, "Everyone checked in today. Great teamwork!"},
		{"one missing", 2, 3, core.DifficultyHard, "Only one more to go! Did someone forget? 👀"},
		{"one missing of two", 1, 2, core.DifficultyHard, "Only one more to go! Did someone forget? 👀"},
		{"nobody yet", 0, 3, core.DifficultyNormal, "Quiet day so far. Start with a light stretch."},
		{"first of many", 1, 5, core.DifficultyNormal, "First one done. Keep the momentum going."},
		{"hard", 2, 5, core.DifficultyHard, "Hard day. Don't overdo it, but take one step forward."},
		{"normal", 2, 5, core.DifficultyNormal, "You can handle normal today. Mind your form."},
		{"easy", 2, 5, core.DifficultyEasy, "Easy is fine. Consistency wins."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.TeamMoodComment(tc.completed, tc.members, tc.difficulty))
		})
	}
}
