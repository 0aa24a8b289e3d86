package adapters

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// PGXAdapter implements DBAdapter for pgxpool.Pool.
type PGXAdapter struct {
	primary *pgxpool.Pool
	replica *pgxpool.Pool
}

// NewPGXAdapter creates a PGXAdapter. replica may be nil.
func NewPGXAdapter(primary *pgxpool.Pool, replica *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{primary: primary, replica: replica}
}

func (p *PGXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	pool := p.primary
	if p.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		pool = p.replica
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

func (p *PGXAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	tag, err := p.primary.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgxResult{tag: tag}, nil
}

func (p *PGXAdapter) ExecSerialized(ctx context.Context, lockName string, query string, args ...any) (DBResult, error) {
	tx, err := p.primary.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }() // no-op after commit

	if _, err = tx.Exec(ctx, advisoryLockQuery, lockName); err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return pgxResult{tag: tag}, nil
}

func (p *PGXAdapter) Ping(ctx context.Context) error {
	return p.primary.Ping(ctx)
}

type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool {
	return r.rows.Next()
}

func (r *pgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *pgxRows) Err() error {
	return r.rows.Err()
}

// Close never fails for pgx, errors surface through Err.
func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}

type pgxResult struct {
	tag pgconn.CommandTag
}

func (r pgxResult) RowsAffected() (int64, error) {
	return r.tag.RowsAffected(), nil
}
