package adapters

import (
	"context"
)

// DBAdapter is everything the event store needs from a database handle.
type DBAdapter interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
	// ExecSerialized runs query in a transaction that first takes the transaction-scoped
	// advisory lock named lockName, so concurrent callers with the same lockName run one after another.
	ExecSerialized(ctx context.Context, lockName string, query string, args ...any) (DBResult, error)
	Ping(ctx context.Context) error
}

const advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

// DBRows is the cursor returned by DBAdapter.Query.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult is the outcome of DBAdapter.Exec.
type DBResult interface {
	RowsAffected() (int64, error)
}
