// Package todayprogress implements the Today's Progress query.
//
// For every item of the day's set it counts the current members who completed it, and it adds the
// team mood comment derived from how many members checked in.
package todayprogress
