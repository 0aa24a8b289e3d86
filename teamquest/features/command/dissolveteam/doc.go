// Package dissolveteam implements the Dissolve Team use case.
//
// Dissolving is a soft delete: the team stays readable, all members leave it and its invite code
// stops working. Only the owner may dissolve a team.
package dissolveteam
