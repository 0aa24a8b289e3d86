// Package regenerateinvite implements the Regenerate Invite Code use case.
//
// Only the owner of an active team may replace its invite code. The old code stops working.
package regenerateinvite
