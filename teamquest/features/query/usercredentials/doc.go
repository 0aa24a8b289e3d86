// Package usercredentials implements the User Credentials query used by login.
//
// It looks a user up by normalized email and returns the stored bcrypt hash. Verifying the
// password is left to the caller.
package usercredentials
