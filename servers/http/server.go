package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	nethttp "net/http"
	"time"

	httpAdapter "github.com/gruzdev-dev/codex-users/adapters/http"
	"github.com/gruzdev-dev/codex-users/configs"
	middleware "github.com/gruzdev-dev/codex-users/middleware/http"

	"github.com/gorilla/mux"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	cfg     *configs.Config
	logger  *slog.Logger
	handler nethttp.Handler
}

func NewServer(cfg *configs.Config, handler *httpAdapter.Handler, logger *slog.Logger) *Server {
	router := mux.NewRouter()
	router.SkipClean(true)
	handler.RegisterRoutes(router)

	var h nethttp.Handler = router
	h = middleware.NormalizePath(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: h,
	}
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() nethttp.Handler {
	return s.handler
}

// Start listens on the configured port and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.HTTPAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.HTTPAddr(), err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &nethttp.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", lis.Addr().String())
		serverErrors <- srv.Serve(lis)
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	s.logger.Info("http server exited")
	return nil
}
