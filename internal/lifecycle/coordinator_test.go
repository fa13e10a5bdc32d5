package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/lifecycle"
	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/internal/repo/memory"
	"github.com/gatewise/visitflow/internal/service"
)

// ---------- Mocks ----------

type sentMail struct {
	kind    string
	toEmail string
	name    string // visitorName or ownerName depending on kind
	date    string
	time    string
}

type captureMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *captureMailer) SendVisitRequestEmail(_ context.Context, toEmail, _, visitorName, date, timeOfDay, _ string) error {
	m.sent = append(m.sent, sentMail{kind: "request", toEmail: toEmail, name: visitorName, date: date, time: timeOfDay})
	return m.sendErr
}

func (m *captureMailer) SendDecisionEmail(_ context.Context, toEmail, _, ownerName, _, date, timeOfDay string) error {
	m.sent = append(m.sent, sentMail{kind: "decision", toEmail: toEmail, name: ownerName, date: date, time: timeOfDay})
	return m.sendErr
}

// ---------- Fixtures ----------

func seededUsers(t *testing.T) *memory.UserRepo {
	t.Helper()
	ctx := context.Background()
	users := memory.NewUserRepo()

	_, err := users.Create(ctx, &domain.User{
		ID: "owner-1", Name: "John Smith", Email: "john@example.com",
		Phone: "555-123-4567", Type: domain.UserOwner, Address: "123 Main Street",
	})
	require.NoError(t, err)
	_, err = users.Create(ctx, &domain.User{
		ID: "visitor-1", Name: "Michael Brown", Email: "michael@example.com",
		Phone: "555-222-3333", Type: domain.UserVisitor,
	})
	require.NoError(t, err)
	return users
}

func request(status domain.RequestStatus) *domain.VisitRequest {
	return &domain.VisitRequest{
		ID:        "request-1",
		VisitorID: "visitor-1",
		OwnerID:   "owner-1",
		Purpose:   "Delivery",
		Date:      "2024-01-01",
		Time:      "10:00",
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func notificationsFixture(t *testing.T) (service.NotificationService, *memory.NotificationRepo, *storage.MemorySnapshots) {
	t.Helper()
	snapshots := storage.NewMemorySnapshots()
	repo, err := memory.NewNotificationRepo(context.Background(), snapshots)
	require.NoError(t, err)
	return service.NewNotificationService(repo), repo, snapshots
}

// ---------- Tests ----------

func TestOnRequestCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the owner with the visitor's name", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, nil)

		require.NoError(t, c.OnRequestCreated(ctx, request(domain.RequestPending)))

		inbox, err := notifications.ListForUser(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "New Visit Request", inbox[0].Title)
		assert.Equal(t, "Michael Brown has requested to visit on 2024-01-01 at 10:00", inbox[0].Message)
		assert.Equal(t, "request-1", inbox[0].RelatedTo)
		assert.False(t, inbox[0].Read)
	})

	t.Run("falls back to A visitor when unresolved", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		c := lifecycle.NewCoordinator(memory.NewUserRepo(), notifications, nil)

		require.NoError(t, c.OnRequestCreated(ctx, request(domain.RequestPending)))

		inbox, err := notifications.ListForUser(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "A visitor has requested to visit on 2024-01-01 at 10:00", inbox[0].Message)
	})

	t.Run("emails the owner best-effort", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		mail := &captureMailer{}
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, mail)

		require.NoError(t, c.OnRequestCreated(ctx, request(domain.RequestPending)))

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "request", mail.sent[0].kind)
		assert.Equal(t, "john@example.com", mail.sent[0].toEmail)
		assert.Equal(t, "Michael Brown", mail.sent[0].name)
	})

	t.Run("mailer failure does not fail the hook", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		mail := &captureMailer{sendErr: assert.AnError}
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, mail)

		require.NoError(t, c.OnRequestCreated(ctx, request(domain.RequestPending)))
	})

	t.Run("notification failure surfaces to the caller", func(t *testing.T) {
		notifications, _, snapshots := notificationsFixture(t)
		snapshots.FailSaves = true
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, nil)

		assert.Error(t, c.OnRequestCreated(ctx, request(domain.RequestPending)))
	})
}

func TestOnRequestStatusChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("approved notifies the visitor", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, nil)

		require.NoError(t, c.OnRequestStatusChanged(ctx, request(domain.RequestApproved)))

		inbox, err := notifications.ListForUser(ctx, "visitor-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "Request Approved", inbox[0].Title)
		assert.Equal(t, "John Smith has approved your visit request for 2024-01-01 at 10:00", inbox[0].Message)
		assert.Equal(t, "request-1", inbox[0].RelatedTo)
	})

	t.Run("denied uses the denied copy", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, nil)

		require.NoError(t, c.OnRequestStatusChanged(ctx, request(domain.RequestDenied)))

		inbox, err := notifications.ListForUser(ctx, "visitor-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "Request Denied", inbox[0].Title)
		assert.Equal(t, "John Smith has denied your visit request for 2024-01-01 at 10:00", inbox[0].Message)
	})

	t.Run("falls back to The owner when unresolved", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		c := lifecycle.NewCoordinator(memory.NewUserRepo(), notifications, nil)

		require.NoError(t, c.OnRequestStatusChanged(ctx, request(domain.RequestApproved)))

		inbox, err := notifications.ListForUser(ctx, "visitor-1")
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "The owner has approved your visit request for 2024-01-01 at 10:00", inbox[0].Message)
	})

	t.Run("emails the visitor best-effort", func(t *testing.T) {
		notifications, _, _ := notificationsFixture(t)
		mail := &captureMailer{}
		c := lifecycle.NewCoordinator(seededUsers(t), notifications, mail)

		require.NoError(t, c.OnRequestStatusChanged(ctx, request(domain.RequestApproved)))

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "decision", mail.sent[0].kind)
		assert.Equal(t, "michael@example.com", mail.sent[0].toEmail)
		assert.Equal(t, "John Smith", mail.sent[0].name)
	})
}
