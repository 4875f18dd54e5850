package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gruzdev-dev/codex-users/core/domain"
	"github.com/gruzdev-dev/codex-users/core/ports"
)

type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list users: %v", domain.ErrInternal, err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := validateUserID(id); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", domain.ErrInternal, err)
	}

	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	if err := validateUserInput(input); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.NewUser(input))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create user: %v", domain.ErrInternal, err)
	}

	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input domain.UserInput) (*domain.User, error) {
	if err := validateUserID(id); err != nil {
		return nil, err
	}
	if err := validateUserInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{ID: id}
	user.Apply(input)

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to update user: %v", domain.ErrInternal, err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := validateUserID(id); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("%w: failed to delete user: %v", domain.ErrInternal, err)
	}

	return nil
}

func validateUserID(id string) error {
	if !domain.IsValidUserID(id) {
		return fmt.Errorf("%w: %q is not a canonical UUID", domain.ErrInvalidUserID, id)
	}
	return nil
}

func validateUserInput(input domain.UserInput) error {
	if input.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if input.Hobbies == nil {
		return fmt.Errorf("%w: hobbies are required", domain.ErrInvalidInput)
	}
	return nil
}
