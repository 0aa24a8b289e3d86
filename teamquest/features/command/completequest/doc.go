// Package completequest implements the Complete Quest use case.
//
// A member marks one item of the team's set for today as done. The points are added to the team
// total, which may raise the team rank. Completing the same item twice is a no-op.
package completequest
