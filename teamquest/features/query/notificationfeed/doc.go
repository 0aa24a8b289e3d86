// Package notificationfeed implements the Notification Feed query: a member's view of the team
// notifications with read flags and the unread count.
package notificationfeed
