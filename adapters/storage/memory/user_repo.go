package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gruzdev-dev/codex-users/core/domain"
	"github.com/gruzdev-dev/codex-users/core/ports"
)

// UserRepo keeps users in insertion order. Every record handed out is a copy.
type UserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo() ports.UserRepository {
	return &UserRepo{
		users: make([]domain.User, 0),
	}
}

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user.Clone())
	}
	return users, nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, domain.ErrUserNotFound
	}

	user := r.users[i].Clone()
	return &user, nil
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := user.Clone()
	r.users = append(r.users, stored)

	created := stored.Clone()
	return &created, nil
}

func (r *UserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(user.ID)
	if i == -1 {
		return nil, domain.ErrUserNotFound
	}

	r.users[i].Apply(domain.UserInput{
		Username: user.Username,
		Age:      user.Age,
		Hobbies:  user.Hobbies,
	})

	updated := r.users[i].Clone()
	return &updated, nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return domain.ErrUserNotFound
	}

	r.users = slices.Delete(r.users, i, i+1)
	return nil
}

// indexOf must be called with mu held.
func (r *UserRepo) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
