package core

// Difficulty of a quest. Every difficulty has a fixed number of points.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

var difficultyPoints = map[Difficulty]int{
	DifficultyEasy:   10,
	DifficultyNormal: 40,
	DifficultyHard:   100,
}

// Points returns the points a quest of this difficulty is worth, 0 for unknown difficulties.
func (d Difficulty) Points() int {
	return difficultyPoints[d]
}

func (d Difficulty) IsValid() bool {
	_, ok := difficultyPoints[d]
	return ok
}

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyForRank maps a team rank to the difficulty of its daily quests.
func DifficultyForRank(r Rank) Difficulty {
	switch r {
	case RankS, RankA, RankB:
		return DifficultyHard
	case RankC, RankD:
		return DifficultyNormal
	default:
		return DifficultyEasy
	}
}
