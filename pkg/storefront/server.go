// Package storefront provides an importable demo storefront the e2e suite
// runs against. Tests start it programmatically on a random port so the
// whole suite is hermetic; cmd/storefront serves the same application
// standalone for manual poking.
package storefront

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/entrhq/storewright/pkg/fixtures"
	"github.com/entrhq/storewright/pkg/logging"
)

// Config holds server configuration options.
type Config struct {
	Addr         string        // Listen address ("127.0.0.1:0" binds a random loopback port)
	ReadTimeout  time.Duration // HTTP read timeout
	WriteTimeout time.Duration // HTTP write timeout
}

// DefaultConfig returns a configuration suitable for testing: a random
// loopback port and generous timeouts.
func DefaultConfig() Config {
	return Config{
		Addr:         "127.0.0.1:0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server is the demo storefront. Cart and login state live server-side,
// keyed by cookies, so a browser reload observes the same cart.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	fixtures   *fixtures.Set
	log        *logging.Logger

	mu      sync.Mutex
	running bool
	addr    string

	state *store
}

// NewServer creates a storefront serving the given fixture catalog. The
// server is not started until Start is called.
func NewServer(cfg Config, set *fixtures.Set) (*Server, error) {
	if set == nil {
		var err error
		set, err = fixtures.Default()
		if err != nil {
			return nil, err
		}
	}

	log, _ := logging.NewLogger("storefront")

	s := &Server{
		fixtures: set,
		log:      log,
		state:    newStore(),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s, nil
}

// Start begins listening and serving HTTP requests. It returns the actual
// address the server is listening on (useful when the port was 0). The
// server runs in a goroutine; Start does not block.
func (s *Server) Start() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.addr, nil
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = listener
	s.addr = listener.Addr().String()
	s.running = true

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("serve: %v", err)
		}
	}()

	s.log.Infof("storefront listening on %s", s.addr)
	return s.addr, nil
}

// Addr returns the listen address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// BaseURL returns the http origin of the running server.
func (s *Server) BaseURL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	return "http://" + addr
}

// Shutdown stops the server gracefully. Safe to call when never started.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.log.Infof("storefront shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the HTTP handler for httptest-style tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
