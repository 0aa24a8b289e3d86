// Package todayset implements the Today's Set query: the daily quest set of a team for one local date.
package todayset
