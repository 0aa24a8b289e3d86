package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict signals that the dynamic event stream changed between Query and Append.
	ErrConcurrencyConflict = errors.New("concurrency conflict: the event stream has changed since it was queried")

	ErrEmptyEventsTableName        = errors.New("events table name must not be empty")
	ErrInvalidEventsTableName      = errors.New("events table name must match [a-z_][a-z0-9_]*")
	ErrNilDatabaseConnection       = errors.New("database connection must not be nil")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrBuildingQueryFailed         = errors.New("building query failed")
	ErrCreatingSchemaFailed        = errors.New("creating schema failed")
)

// MaxSequenceNumberUint is the highest sequence number of a "dynamic event stream" at query time.
type MaxSequenceNumberUint = uint
