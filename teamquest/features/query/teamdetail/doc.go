// Package teamdetail implements the Team Detail query: name, members, points and rank of a team.
//
// Only members can read a team. The invite code is returned to the owner only.
package teamdetail
