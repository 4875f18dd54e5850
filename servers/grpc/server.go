package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	grpcAdapter "github.com/gruzdev-dev/codex-users/adapters/grpc"
	"github.com/gruzdev-dev/codex-users/configs"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UsersService is the service name reported by the health endpoint.
const UsersService = "codex.users.v1.Users"

type Server struct {
	cfg        *configs.Config
	logger     *slog.Logger
	grpcServer *grpc.Server
	health     *health.Server
}

func NewServer(cfg *configs.Config, logger *slog.Logger) *Server {
	opts := []grpc.ServerOption{
		grpc.UnaryInterceptor(grpcAdapter.LoggingInterceptor(logger)),
	}

	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)

	return &Server{
		cfg:        cfg,
		logger:     logger,
		grpcServer: s,
		health:     hs,
	}
}

// Start serves the health endpoint until ctx is cancelled. It is a no-op
// blocking on ctx when gRPC is disabled.
func (s *Server) Start(ctx context.Context) error {
	if !s.cfg.GRPC.Enabled {
		<-ctx.Done()
		return nil
	}

	addr := s.cfg.GRPCAddr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(UsersService, healthpb.HealthCheckResponse_SERVING)

	s.logger.Info("starting grpc server", "addr", lis.Addr().String())
	errCh := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		return fmt.Errorf("gRPC server error: %w", err)
	}
}

func (s *Server) Stop() {
	s.logger.Info("stopping grpc server")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
