// Package dailyrollover assigns the daily quest set of every active, unlocked team.
//
// The job runs once at start and then on every tick. Assigning a set is idempotent per
// (team, local date), so overlapping runs, restarts and several replicas are harmless.
package dailyrollover
