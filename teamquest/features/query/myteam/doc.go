// Package myteam implements the My Team query: the team a user currently belongs to, if any.
package myteam
