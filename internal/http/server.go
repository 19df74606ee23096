package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Server struct {
	log *logger.Logger
	srv *http.Server
}

func NewServer(log *logger.Logger, addr string, handler http.Handler) *Server {
	return &Server{
		log: log.With("component", "HTTPServer"),
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// Run blocks until the listener fails or Shutdown is called. A clean
// shutdown returns nil.
func (s *Server) Run() error {
	s.log.Info("Server is running", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Server shutting down")
	return s.srv.Shutdown(ctx)
}
