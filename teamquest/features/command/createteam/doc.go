// Package createteam implements the Create Team use case.
//
// The creator becomes the owner and first member, and the team gets its first invite code.
// A user can only be in one team at a time.
package createteam
