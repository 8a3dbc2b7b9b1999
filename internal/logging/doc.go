// Package logging defines the Logger used for diagnostics on stderr, with a
// zerolog backend and a *log.Logger adapter.
package logging
