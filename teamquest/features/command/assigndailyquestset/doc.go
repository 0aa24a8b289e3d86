// Package assigndailyquestset implements the Assign Daily Quest Set use case.
//
// Every team gets at most one set per local date. The set is picked from the quest catalog
// with a random source seeded by team and date, and its ID is derived from team and date as well,
// so asking again, from any replica, yields the same set.
package assigndailyquestset
