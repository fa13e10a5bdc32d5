package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

// AuthService is the mock sign-in flow: a directory lookup by email and
// variant, no passwords or tokens. The signed-in session persists as the
// auth-storage snapshot so a restart resumes where the caller left off.
type AuthService interface {
	Login(ctx context.Context, email string, userType domain.UserType) (*domain.User, error)
	DemoLogin(ctx context.Context, userType domain.UserType, userID string) (*domain.User, error)
	Register(ctx context.Context, user domain.User) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
}

type session struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

type authService struct {
	mu        sync.Mutex
	current   *domain.User
	userRepo  repo.UserRepository
	snapshots storage.Snapshots
}

func NewAuthService(ctx context.Context, userRepo repo.UserRepository, snapshots storage.Snapshots) (AuthService, error) {
	s := &authService{
		userRepo:  userRepo,
		snapshots: snapshots,
	}

	blob, err := snapshots.Load(ctx, storage.AuthNamespace)
	if errors.Is(err, sentinel.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load auth snapshot: %w", err)
	}

	var sess session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return nil, fmt.Errorf("decode auth snapshot: %w", err)
	}
	if sess.IsAuthenticated {
		s.current = sess.User
	}
	return s, nil
}

func (s *authService) Login(ctx context.Context, email string, userType domain.UserType) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user.Type != userType {
		return nil, fmt.Errorf("invalid email or password: %w", sentinel.ErrNotFound)
	}
	if err := s.setCurrent(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DemoLogin signs in a specific directory entry, or the first user of the
// requested variant when no ID is given.
func (s *authService) DemoLogin(ctx context.Context, userType domain.UserType, userID string) (*domain.User, error) {
	var user *domain.User
	if userID != "" {
		found, err := s.userRepo.FindByID(ctx, userID)
		if err != nil || found.Type != userType {
			return nil, fmt.Errorf("demo user not found: %w", sentinel.ErrNotFound)
		}
		user = found
	} else {
		users, err := s.userRepo.ListByType(ctx, userType)
		if err != nil || len(users) == 0 {
			return nil, fmt.Errorf("demo user not found: %w", sentinel.ErrNotFound)
		}
		user = &users[0]
	}

	if err := s.setCurrent(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register adds a new user to the directory and signs them in. The directory
// enforces email uniqueness across owners and visitors.
func (s *authService) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = string(user.Type) + "-" + uuid.NewString()
	}

	created, err := s.userRepo.Create(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	if err := s.setCurrent(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.setCurrent(ctx, nil)
}

func (s *authService) Current(_ context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, fmt.Errorf("not signed in: %w", sentinel.ErrNotFound)
	}
	user := *s.current
	return &user, nil
}

func (s *authService) setCurrent(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current
	s.current = user

	blob, err := json.Marshal(session{User: user, IsAuthenticated: user != nil})
	if err != nil {
		s.current = previous
		return fmt.Errorf("encode auth snapshot: %w", err)
	}
	if err := s.snapshots.Save(ctx, storage.AuthNamespace, blob); err != nil {
		s.current = previous
		return err
	}
	return nil
}
