package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver

	"github.com/AntonStoeckl/teamquest/eventstore/postgresengine"
)

// ErrOpeningDatabaseFailed wraps connection failures.
var ErrOpeningDatabaseFailed = errors.New("opening database failed")

// PGXPoolConfig builds a pgxpool.Config from dsn and the pool settings.
func PGXPoolConfig(dsn string, cfg DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns) //nolint:gosec // bounded by config validation
	poolConfig.MinConns = int32(cfg.MinConns) //nolint:gosec // bounded by config validation
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	return poolConfig, nil
}

// OpenEventStore connects with the configured adapter and returns the event store plus a function
// that closes every connection it opened. options are applied after the table name.
func OpenEventStore(
	ctx context.Context,
	cfg DatabaseConfig,
	options ...postgresengine.Option,
) (postgresengine.EventStore, func(), error) {

	allOptions := append([]postgresengine.Option{postgresengine.WithTableName(cfg.TableName)}, options...)

	switch cfg.Adapter {
	case AdapterSQLDB:
		db, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return postgresengine.EventStore{}, nil, errors.Join(ErrOpeningDatabaseFailed, err)
		}
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MinConns)
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)

		es, err := postgresengine.NewEventStoreFromSQLDB(db, allOptions...)
		if err != nil {
			_ = db.Close()
			return postgresengine.EventStore{}, nil, err
		}

		return es, func() { _ = db.Close() }, nil

	case AdapterSQLXDB:
		db, err := sqlx.Open("postgres", cfg.DSN)
		if err != nil {
			return postgresengine.EventStore{}, nil, errors.Join(ErrOpeningDatabaseFailed, err)
		}
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MinConns)
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)

		es, err := postgresengine.NewEventStoreFromSQLX(db, allOptions...)
		if err != nil {
			_ = db.Close()
			return postgresengine.EventStore{}, nil, err
		}

		return es, func() { _ = db.Close() }, nil

	case AdapterPGXPool:
		return openPGXEventStore(ctx, cfg, allOptions)
	}

	return postgresengine.EventStore{}, nil, fmt.Errorf("%w: unsupported adapter %q", ErrInvalidConfig, cfg.Adapter)
}

func openPGXEventStore(
	ctx context.Context,
	cfg DatabaseConfig,
	options []postgresengine.Option,
) (postgresengine.EventStore, func(), error) {

	primaryConfig, err := PGXPoolConfig(cfg.DSN, cfg)
	if err != nil {
		return postgresengine.EventStore{}, nil, err
	}

	primary, err := pgxpool.NewWithConfig(ctx, primaryConfig)
	if err != nil {
		return postgresengine.EventStore{}, nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	if cfg.ReplicaDSN == "" {
		es, esErr := postgresengine.NewEventStoreFromPGXPool(primary, options...)
		if esErr != nil {
			primary.Close()
			return postgresengine.EventStore{}, nil, esErr
		}

		return es, primary.Close, nil
	}

	replicaConfig, err := PGXPoolConfig(cfg.ReplicaDSN, cfg)
	if err != nil {
		primary.Close()
		return postgresengine.EventStore{}, nil, err
	}

	replica, err := pgxpool.NewWithConfig(ctx, replicaConfig)
	if err != nil {
		primary.Close()
		return postgresengine.EventStore{}, nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	es, err := postgresengine.NewEventStoreFromPGXPoolAndReplica(primary, replica, options...)
	if err != nil {
		primary.Close()
		replica.Close()
		return postgresengine.EventStore{}, nil, err
	}

	return es, func() { replica.Close(); primary.Close() }, nil
}
