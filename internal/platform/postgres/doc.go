// Package postgres provides the PostgreSQL implementations of the
// store interfaces, translating driver-level errors into the store
// sentinel hierarchy.
package postgres
