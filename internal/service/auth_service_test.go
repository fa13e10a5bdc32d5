package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/internal/repo/memory"
	"github.com/gatewise/visitflow/internal/service"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

func authFixture(t *testing.T) (service.AuthService, *memory.UserRepo, *storage.MemorySnapshots) {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepo()
	for _, u := range []domain.User{
		{ID: "owner-1", Name: "John Smith", Email: "john@example.com", Phone: "555-123-4567",
			Type: domain.UserOwner, Address: "123 Main Street"},
		{ID: "visitor-1", Name: "Michael Brown", Email: "michael@example.com", Phone: "555-222-3333",
			Type: domain.UserVisitor},
	} {
		_, err := users.Create(ctx, &u)
		require.NoError(t, err)
	}

	snapshots := storage.NewMemorySnapshots()
	svc, err := service.NewAuthService(ctx, users, snapshots)
	require.NoError(t, err)
	return svc, users, snapshots
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("login by email and variant", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		user, err := svc.Login(ctx, "John@Example.com", domain.UserOwner)
		require.NoError(t, err)
		assert.Equal(t, "owner-1", user.ID)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "owner-1", current.ID)
	})

	t.Run("wrong variant fails like a wrong password", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		_, err := svc.Login(ctx, "john@example.com", domain.UserVisitor)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("unknown email fails", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		_, err := svc.Login(ctx, "nobody@example.com", domain.UserOwner)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestAuthDemoLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the first user of the variant", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		user, err := svc.DemoLogin(ctx, domain.UserVisitor, "")
		require.NoError(t, err)
		assert.Equal(t, "visitor-1", user.ID)
	})

	t.Run("specific id must match the variant", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		_, err := svc.DemoLogin(ctx, domain.UserVisitor, "owner-1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("adds to the directory and signs in", func(t *testing.T) {
		svc, users, _ := authFixture(t)
		created, err := svc.Register(ctx, domain.User{
			Name: "Emily Davis", Email: "emily@example.com", Phone: "555-444-5555",
			Type: domain.UserVisitor,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		inDirectory, err := users.FindByEmail(ctx, "emily@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, inDirectory.ID)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, created.ID, current.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, _, _ := authFixture(t)
		_, err := svc.Register(ctx, domain.User{
			Name: "Impostor", Email: "john@example.com", Phone: "555-000-0000",
			Type: domain.UserVisitor,
		})
		assert.ErrorIs(t, err, sentinel.ErrConflict)
	})
}

func TestAuthSessionPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("session survives a restart over the same snapshots", func(t *testing.T) {
		svc, users, snapshots := authFixture(t)
		_, err := svc.Login(ctx, "michael@example.com", domain.UserVisitor)
		require.NoError(t, err)

		restarted, err := service.NewAuthService(ctx, users, snapshots)
		require.NoError(t, err)
		current, err := restarted.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "visitor-1", current.ID)
	})

	t.Run("logout clears the persisted session", func(t *testing.T) {
		svc, users, snapshots := authFixture(t)
		_, err := svc.Login(ctx, "michael@example.com", domain.UserVisitor)
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx))

		_, err = svc.Current(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)

		restarted, err := service.NewAuthService(ctx, users, snapshots)
		require.NoError(t, err)
		_, err = restarted.Current(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
