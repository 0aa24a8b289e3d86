package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// SQLXAdapter implements DBAdapter for sqlx.DB.
type SQLXAdapter struct {
	primary *sqlx.DB
	replica *sqlx.DB
}

// NewSQLXAdapter creates a SQLXAdapter. replica may be nil.
func NewSQLXAdapter(primary *sqlx.DB, replica *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{primary: primary, replica: replica}
}

func (s *SQLXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	db := s.primary
	if s.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = s.replica
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *SQLXAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return s.primary.ExecContext(ctx, query, args...)
}

func (s *SQLXAdapter) ExecSerialized(ctx context.Context, lockName string, query string, args ...any) (DBResult, error) {
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

func (s *SQLXAdapter) Ping(ctx context.Context) error {
	return s.primary.PingContext(ctx)
}
