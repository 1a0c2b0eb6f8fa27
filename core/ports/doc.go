// Package ports selects the TCP port the web server listens on.
//
// FindAvailablePort scans upward from a preferred port and returns the first
// one that can be bound on the wildcard address. The probe listener is closed
// before returning, so the caller must bind the port again itself.
//
// # Known Limitation
//
// Between the probe closing and the server binding, another process may take
// the port. The server then fails to listen and the process exits non-zero.
//
// # Usage
//
//	port, err := ports.FindAvailablePort(8000, ports.DefaultMaxTries)
//	if errors.Is(err, ports.ErrNoAvailablePort) {
//	    // every port in 8000..8019 is taken
//	}
package ports
