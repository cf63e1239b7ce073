// Package domain contains the core entities and their construction-time
// validation rules, independent of transport and persistence concerns.
package domain
