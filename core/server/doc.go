// Package server holds the HTTP server configuration and lifecycle.
//
// # Configuration
//
// The Config struct defines the preferred port, the root directory, how many
// ports to probe and whether to open a browser. PreferredPort falls back to
// 8000 when the configured value does not parse, and ResolveRoot enforces
// that the served directory exists before any socket is opened.
//
// # Lifecycle
//
// Server.Run walks through the states
//
//	init -> port_selected -> serving -> shutting_down -> terminated
//
// It selects a port with the ports package, listens, logs a single startup
// line, launches the browser in the background and serves until its context
// is cancelled. Cancellation is the normal way to stop and yields a nil error.
package server
