package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	grpcServer "github.com/gruzdev-dev/codex-users/servers/grpc"
	httpServer "github.com/gruzdev-dev/codex-users/servers/http"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "codex-users",
		Short:        "In-memory users CRUD service",
		Long:         "codex-users serves create/read/update/delete of user records over HTTP at /api/users.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags())
		},
	}

	cmd.Flags().String("config", "", "config file (env USERS_CONFIG)")
	cmd.Flags().String("port", "4000", "HTTP port (env PORT)")
	cmd.Flags().Bool("grpc", true, "serve the gRPC health endpoint (env GRPC_ENABLED)")
	cmd.Flags().String("grpc-port", "50051", "gRPC health port (env GRPC_PORT)")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error (env LOG_LEVEL)")

	return cmd
}

func run(ctx context.Context, flags *pflag.FlagSet) error {
	container, err := BuildContainer(flags)
	if err != nil {
		return err
	}

	return container.Invoke(func(
		httpSrv *httpServer.Server,
		grpcSrv *grpcServer.Server,
	) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return httpSrv.Start(ctx)
		})

		g.Go(func() error {
			return grpcSrv.Start(ctx)
		})

		return g.Wait()
	})
}
