// Package config defines the application configuration structure and
// its environment-driven loader. Configuration is loaded once at
// startup and treated as immutable for the process lifetime.
package config
