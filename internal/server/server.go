package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// SecurityLayer produces the network listener the server accepts on.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// HTTPServer serves the blog over a listener supplied by a SecurityLayer.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates a server for the given root handler and address.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{Handler: handler},
		addr:   addr,
	}
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}

// Start listens via the security layer and serves until shutdown.
func (s *HTTPServer) Start(sl SecurityLayer) error {
	listener, err := sl.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
