// Package postgreswrapper gives integration tests a postgresengine.EventStore on a fresh table.
//
// The connection type is chosen by the ADAPTER_TYPE environment variable (pgx.pool, sql.db, sqlx.db),
// the database by TEAMQUEST_TEST_DATABASE_URL. Tests are skipped when the database is unreachable.
package postgreswrapper
