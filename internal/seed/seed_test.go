package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/internal/repo/memory"
	"github.com/gatewise/visitflow/internal/seed"
)

func TestApply(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memory.UserRepo, *memory.VisitRepo, *memory.NotificationRepo) {
		t.Helper()
		snapshots := storage.NewMemorySnapshots()
		users := memory.NewUserRepo()
		visits, err := memory.NewVisitRepo(ctx, snapshots)
		require.NoError(t, err)
		notifications, err := memory.NewNotificationRepo(ctx, snapshots)
		require.NoError(t, err)
		return users, visits, notifications
	}

	t.Run("loads the demo dataset", func(t *testing.T) {
		users, visits, notifications := setup(t)
		require.NoError(t, seed.Apply(ctx, users, visits, notifications))

		owners, err := users.ListByType(ctx, "owner")
		require.NoError(t, err)
		assert.Len(t, owners, 2)

		requests, err := visits.List(ctx)
		require.NoError(t, err)
		assert.Len(t, requests, 4)

		inbox, err := notifications.ListByUser(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "request-1", inbox[0].RelatedTo)
	})

	t.Run("is idempotent across restarts", func(t *testing.T) {
		users, visits, notifications := setup(t)
		require.NoError(t, seed.Apply(ctx, users, visits, notifications))
		require.NoError(t, seed.Apply(ctx, users, visits, notifications))

		requests, err := visits.List(ctx)
		require.NoError(t, err)
		assert.Len(t, requests, 4)

		visitors, err := users.ListByType(ctx, "visitor")
		require.NoError(t, err)
		assert.Len(t, visitors, 3)
	})

	t.Run("does not touch a non-empty visit collection", func(t *testing.T) {
		users, visits, notifications := setup(t)
		require.NoError(t, seed.Apply(ctx, users, visits, notifications))

		// Wipe only users; restored snapshots keep their requests.
		require.NoError(t, users.Reset(ctx))
		require.NoError(t, seed.Apply(ctx, users, visits, notifications))

		requests, err := visits.List(ctx)
		require.NoError(t, err)
		assert.Len(t, requests, 4)

		inbox, err := notifications.ListByUser(ctx, "owner-1")
		require.NoError(t, err)
		assert.Len(t, inbox, 1)
	})
}
