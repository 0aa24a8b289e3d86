// Package shell is the imperative shell around the TeamQuest core.
//
// It converts between domain events and storable events, carries event metadata,
// retries commands on concurrency conflicts and holds the observability helpers
// shared by the command and query wrappers.
package shell
