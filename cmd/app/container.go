package main

import (
	httpAdapter "github.com/gruzdev-dev/codex-users/adapters/http"
	"github.com/gruzdev-dev/codex-users/adapters/storage/memory"
	"github.com/gruzdev-dev/codex-users/configs"
	"github.com/gruzdev-dev/codex-users/core/ports"
	"github.com/gruzdev-dev/codex-users/core/services"
	"github.com/gruzdev-dev/codex-users/pkg/logger"
	grpcServer "github.com/gruzdev-dev/codex-users/servers/grpc"
	httpServer "github.com/gruzdev-dev/codex-users/servers/http"

	"github.com/spf13/pflag"
	"go.uber.org/dig"
)

func BuildContainer(flags *pflag.FlagSet) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() *pflag.FlagSet { return flags }); err != nil {
		return nil, err
	}

	if err := container.Provide(configs.NewConfig); err != nil {
		return nil, err
	}

	if err := container.Provide(logger.NewLogger); err != nil {
		return nil, err
	}

	if err := container.Provide(memory.NewUserRepo); err != nil {
		return nil, err
	}

	if err := container.Provide(services.NewUserService, dig.As(new(ports.UserService))); err != nil {
		return nil, err
	}

	if err := container.Provide(httpAdapter.NewHandler); err != nil {
		return nil, err
	}

	if err := container.Provide(httpServer.NewServer); err != nil {
		return nil, err
	}

	if err := container.Provide(grpcServer.NewServer); err != nil {
		return nil, err
	}

	return container, nil
}
