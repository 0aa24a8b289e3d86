// Package todaymvp implements the Today's MVP query.
//
// The MVP is the user with the highest sum of quest points on the date. Ties go to the user whose
// first completion of the day came earliest.
package todaymvp
