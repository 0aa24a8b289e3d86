// Package deactivateinvite implements the Deactivate Invite Code use case, e.g. after a code leaked.
package deactivateinvite
