// Package jointeam implements the Join Team use case: a user joins the team of an invite code.
//
// The invite code is resolved to its team inside every retry, so the consistency boundary always
// covers the user, the code and the team the code currently belongs to.
package jointeam
