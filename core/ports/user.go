package ports

import (
	"context"

	"github.com/gruzdev-dev/codex-users/core/domain"
)

//go:generate mockgen -source=user.go -destination=user_mocks.go -package=ports UserRepository,UserService

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
