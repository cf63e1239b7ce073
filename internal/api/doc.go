// Package api contains the HTTP handlers, the request/response DTOs,
// and the closed error taxonomy that maps every failure onto one of
// five client-visible kinds.
package api
