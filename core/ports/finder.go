package ports

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	// DefaultMaxTries is the number of ports probed when no limit is given.
	DefaultMaxTries = 20
	// MaxPort is the highest valid TCP port.
	MaxPort = 65535
)

var (
	// ErrNoAvailablePort is returned when every port in the scanned range is taken.
	ErrNoAvailablePort = errors.New("no available port found in range")
	// ErrInvalidPort is returned for a start port outside 0..65535.
	ErrInvalidPort = errors.New("invalid port")
)

// FindAvailablePort probes startPort, startPort+1, ... in order and returns
// the first port that binds on the wildcard address. At most maxTries ports
// are probed; maxTries <= 0 means DefaultMaxTries.
//
// A startPort of 0 lets the kernel pick an ephemeral port, which is returned.
func FindAvailablePort(startPort, maxTries int) (int, error) {
	if startPort < 0 || startPort > MaxPort {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPort, startPort)
	}
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}

	last := startPort
	for i := 0; i < maxTries; i++ {
		port := startPort + i
		if port > MaxPort {
			break
		}
		last = port

		bound, err := probe(port)
		if err == nil {
			return bound, nil
		}
	}

	return 0, fmt.Errorf("%w: %d-%d", ErrNoAvailablePort, startPort, last)
}

// probe binds port, closes the listener and reports the bound port.
func probe(port int) (int, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return 0, err
	}
	defer ln.Close()

	return ln.Addr().(*net.TCPAddr).Port, nil
}
