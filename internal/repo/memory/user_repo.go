package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/utils"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

// UserRepo is the in-process user directory. It backs join resolution, the
// coordinator's display-name lookups, and the mock auth flow. Unlike the
// visit and notification collections it is not snapshot-persisted: the
// directory is rebuilt from seed data (plus registrations) each run.
type UserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// Create validates the user and enforces email uniqueness across both
// variants before appending.
func (r *UserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	email := utils.NormalizeEmail(user.Email)
	for i := range r.users {
		if utils.NormalizeEmail(r.users[i].Email) == email {
			return nil, fmt.Errorf("email already in use: %w", sentinel.ErrConflict)
		}
		if r.users[i].ID == user.ID {
			return nil, fmt.Errorf("user id %s already exists: %w", user.ID, sentinel.ErrConflict)
		}
	}

	stored := *user
	stored.Email = email
	r.users = append(r.users, stored)

	created := stored
	return &created, nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, sentinel.ErrNotFound)
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := utils.NormalizeEmail(email)
	for i := range r.users {
		if utils.NormalizeEmail(r.users[i].Email) == normalized {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, sentinel.ErrNotFound)
}

func (r *UserRepo) ListByType(_ context.Context, userType domain.UserType) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []domain.User{}
	for i := range r.users {
		if r.users[i].Type == userType {
			results = append(results, r.users[i])
		}
	}
	return results, nil
}

func (r *UserRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = nil
	return nil
}
