// Package inmemory provides process-local repositories used when no
// DATABASE_URL is configured. Accounts do not survive a restart.
package inmemory

import (
	"context"
	"strings"
	"sync"

	"github.com/atslens/ats-engine/pkg/auth"
)

// UserRepository implements auth.UserRepository in process memory.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]auth.User{}}
}

func (r *UserRepository) Create(_ context.Context, user auth.User) error {
	email := strings.ToLower(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[email]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.users[email] = user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}
