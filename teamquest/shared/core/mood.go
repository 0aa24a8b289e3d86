package core

// TeamMoodComment returns the one-line comment shown above today's progress.
// completed is the number of distinct members with at least one completion today.
func TeamMoodComment(completed int, members int, difficulty Difficulty) string {
	switch {
	case members <= 0:
		return "Keep stacking small wins today."
	case members >= 2 && completed >= members:
		return "Everyone checked in today. Great teamwork!"
	case members >= 2 && completed == members-1:
		return "Only one more to go! Did someone forget? 👀"
	case completed == 0:
		return "Quiet day so far. Start with a light stretch."
	case completed == 1 && members >= 4:
		return "First one done. Keep the momentum going."
	}

	switch difficulty {
	case DifficultyHard:
		return "Hard day. Don't overdo it, but take one step forward."
	case DifficultyNormal:
		return "You can handle normal today. Mind your form."
	default:
		return "Easy is fine. Consistency wins."
	}
}
