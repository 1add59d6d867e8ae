// Package httpsrv serves the Prometheus metrics and health endpoints while
// the tool polls in wait mode.
package httpsrv

import (
	"context"
	"errors"
	"net/http"
	"time"
)

type Server struct {
	srv *http.Server
}

type ServerOptions struct {
	MetricsHandler http.Handler
	MetricsPath    string
}

func NewServer(addr string, opts ServerOptions) *Server {
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	router := http.NewServeMux()
	router.Handle("/health", healthHandler())
	router.Handle(opts.MetricsPath, opts.MetricsHandler)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) ListenAddr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	err := s.srv.ListenAndServe()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
