// Package markread implements the Mark Notification Read use case.
package markread
