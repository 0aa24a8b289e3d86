// Package signup implements the Sign Up use case.
//
// A user registers with an email address, a display name and an already hashed password.
// Email addresses are unique. Signing up twice with the same UserID is a no-op.
package signup
