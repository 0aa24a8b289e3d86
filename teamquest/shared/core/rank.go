package core

// Rank is a team rank letter from F (lowest) to S (highest).
type Rank string

const (
	RankF Rank = "F"
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

type rankThreshold struct {
	rank      Rank
	minPoints int
}

// rankThresholds must stay in ascending order.
var rankThresholds = []rankThreshold{
	{RankF, 0},
	{RankE, 100},
	{RankD, 300},
	{RankC, 600},
	{RankB, 1100},
	{RankA, 1600},
	{RankS, 2100},
}

// RankForPoints returns the highest rank whose threshold is at most totalPoints.
// Negative totals are treated as 0.
func RankForPoints(totalPoints int) Rank {
	rank := RankF
	for _, t := range rankThresholds {
		if totalPoints >= t.minPoints {
			rank = t.rank
		}
	}

	return rank
}

// NextRankThreshold returns the points needed for the rank after r.
// S is the top rank and returns its own threshold of 2100, so a progress bar at S stays full
// instead of restarting at the threshold of E. An unknown rank returns the threshold of E.
func NextRankThreshold(r Rank) int {
	for i, t := range rankThresholds {
		if t.rank != r {
			continue
		}

		if i == len(rankThresholds)-1 {
			return t.minPoints
		}

		return rankThresholds[i+1].minPoints
	}

	return rankThresholds[1].minPoints
}

// IsAbove reports whether r is a higher rank than other. Unknown ranks are below F.
func (r Rank) IsAbove(other Rank) bool {
	return r.order() > other.order()
}

// IsValid reports whether r is one of F, E, D, C, B, A, S.
func (r Rank) IsValid() bool {
	return r.order() >= 0
}

func (r Rank) String() string {
	return string(r)
}

func (r Rank) order() int {
	for i, t := range rankThresholds {
		if t.rank == r {
			return i
		}
	}

	return -1
}
