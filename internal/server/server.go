package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sokinpui/hackathon.go/internal/config"
	"github.com/sokinpui/hackathon.go/internal/logging"
	"github.com/sokinpui/hackathon.go/model"
)

// Server owns the process-wide listener.
type Server struct {
	cfg *config.Settings
	srv *http.Server
	log *logrus.Logger
}

func New(cfg *config.Settings, registry *model.Registry) *Server {
	return &Server{
		cfg: cfg,
		log: logging.GetLogger(),
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewHTTPServer(registry, cfg).Handler(),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}
}

// Run binds the listen address and serves until ctx is cancelled, then
// shuts down within the configured timeout. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context) error {
	log := s.log

	lis, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(lis)
	}()
	log.Infof("Server running on http://%s/", displayAddr(lis.Addr()))

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping server...")
		shCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shCtx); err != nil {
			log.Warnf("Graceful shutdown failed: %v", err)
			_ = s.srv.Close()
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// displayAddr swaps an unspecified host for localhost so the logged URL
// can be opened directly.
func displayAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return addr.String()
	}
	return fmt.Sprintf("localhost:%d", tcp.Port)
}
