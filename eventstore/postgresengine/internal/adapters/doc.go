// Package adapters hides the differences between pgxpool.Pool, sql.DB and sqlx.DB behind DBAdapter.
//
// All adapters route reads to an optional replica when the context asks for eventual consistency.
package adapters
