// Package store defines the persistence interfaces and the sentinel
// error hierarchy shared by all storage backends. Handlers and services
// depend on these interfaces, never on a concrete database package.
package store
