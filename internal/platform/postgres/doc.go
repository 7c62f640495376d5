// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It also embeds the goose migrations that
// create the users and tasks tables.
//
// Every task query is built by newTaskQuery, which refuses to produce SQL
// without an owner condition.
package postgres
