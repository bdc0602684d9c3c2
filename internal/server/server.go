// Package server runs the API and diagnostics listeners side by side.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	api    *http.Server
	diag   *http.Server
	logger *zap.SugaredLogger
}

func New(addr, diagAddr string, api, diag http.Handler, logger *zap.SugaredLogger) *Server {
	return &Server{
		api:    &http.Server{Addr: addr, Handler: api},
		diag:   &http.Server{Addr: diagAddr, Handler: diag},
		logger: logger,
	}
}

// Run serves until ctx is cancelled or a listener fails, then shuts both
// servers down. It returns the first listener error, if any.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 2)
	for _, srv := range []*http.Server{s.api, s.diag} {
		go func(srv *http.Server) {
			s.logger.Infow("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err

				return
			}
			errc <- nil
		}(srv)
	}

	var first error
	received := 0
	select {
	case <-ctx.Done():
	case first = <-errc:
		received++
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range []*http.Server{s.api, s.diag} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("shutdown", "addr", srv.Addr, "error", err)
		}
	}

	for ; received < 2; received++ {
		if err := <-errc; err != nil && first == nil {
			first = err
		}
	}

	return first
}
