package adapters

import (
	"context"
	"database/sql"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// SQLAdapter implements DBAdapter for database/sql, typically with the lib/pq driver.
type SQLAdapter struct {
	primary *sql.DB
	replica *sql.DB
}

// NewSQLAdapter creates a SQLAdapter. replica may be nil.
func NewSQLAdapter(primary *sql.DB, replica *sql.DB) *SQLAdapter {
	return &SQLAdapter{primary: primary, replica: replica}
}

func (s *SQLAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	db := s.primary
	if s.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = s.replica
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *SQLAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return s.primary.ExecContext(ctx, query, args...)
}

func (s *SQLAdapter) ExecSerialized(ctx context.Context, lockName string, query string, args ...any) (DBResult, error) {
	tx, err := s.primary.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if _, err = tx.ExecContext(ctx, advisoryLockQuery, lockName); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *SQLAdapter) Ping(ctx context.Context) error {
	return s.primary.PingContext(ctx)
}
