package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"

	"serve-web/core/browser"
	"serve-web/core/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server runs a Fiber app on the first available port until its context ends.
type Server struct {
	cfg    Config
	root   string
	app    *fiber.App
	logger *zap.Logger
	opener browser.Opener

	state atomic.Int32
	port  atomic.Int32
}

// New creates a server for app. root is the already resolved directory being
// served and is only used for the startup message. A nil opener disables the
// browser launch.
func New(cfg Config, root string, app *fiber.App, logger *zap.Logger, opener browser.Opener) *Server {
	return &Server{
		cfg:    cfg,
		root:   root,
		app:    app,
		logger: logger,
		opener: opener,
	}
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Port returns the bound port, or 0 before a port has been selected.
func (s *Server) Port() int {
	return int(s.port.Load())
}

// URL returns the landing page URL for the bound port.
func (s *Server) URL() string {
	return LandingURL(s.Port())
}

// LandingURL returns the landing page URL on localhost for port.
func LandingURL(port int) string {
	return fmt.Sprintf("http://localhost:%d/%s", port, LandingPage)
}

// Run selects a port, serves until ctx is done and then shuts down.
// It returns nil on a clean shutdown and an error if the server never
// reached the serving state or stopped on its own.
func (s *Server) Run(ctx context.Context) error {
	s.setState(StateInit)

	port, err := ports.FindAvailablePort(s.cfg.PreferredPort(), s.cfg.PortAttempts())
	if err != nil {
		return err
	}
	s.port.Store(int32(port))
	s.setState(StatePortSelected)

	// The port was released by the probe; another process may have taken it since.
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.setState(StateServing)
	s.logger.Info(fmt.Sprintf("Serving %s at %s", s.root, s.URL()),
		zap.String("root", s.root),
		zap.Int("port", s.Port()),
	)

	if s.cfg.OpenBrowser && s.opener != nil {
		browser.Launch(s.opener, s.URL())
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.setState(StateTerminated)
		if err == nil {
			return errors.New("server stopped unexpectedly")
		}
		return fmt.Errorf("server failed: %w", err)
	}

	s.setState(StateShuttingDown)
	s.logger.Info("Shutting down server...")

	shutdownErr := s.app.Shutdown()
	// Shutdown only closes listeners fasthttp has already registered.
	_ = ln.Close()
	serveErr := <-errCh
	s.setState(StateTerminated)

	if shutdownErr != nil {
		return fmt.Errorf("failed to shut down: %w", shutdownErr)
	}
	if serveErr != nil {
		s.logger.Debug("Listener returned after shutdown", zap.Error(serveErr))
	}
	return nil
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
	s.logger.Debug("Server state changed", zap.Stringer("state", st))
}
