package repo

import (
	"context"

	"github.com/gatewise/visitflow/internal/domain"
)

// Repository contracts for the three collections. Implementations keep
// insertion order and apply each operation atomically with respect to the
// others. The visit and notification collections persist wholesale through an
// injected snapshot store; the user directory is a plain in-process lookup.
//
// Error contract: FindByID/GetByID/UpdateStatus return sentinel.ErrNotFound
// (wrapped) for unknown IDs; MarkRead/MarkAllRead/Delete are no-ops for
// unknown IDs; a failed snapshot save surfaces as sentinel.ErrUnavailable and
// leaves the in-memory collection as it was before the call.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByType(ctx context.Context, userType domain.UserType) ([]domain.User, error)
	Reset(ctx context.Context) error
}

type VisitRepository interface {
	Append(ctx context.Context, request *domain.VisitRequest) error
	GetByID(ctx context.Context, id string) (*domain.VisitRequest, error)
	List(ctx context.Context) ([]domain.VisitRequest, error)
	ListByVisitor(ctx context.Context, visitorID string) ([]domain.VisitRequest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.VisitRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.VisitRequest, error)
	Reset(ctx context.Context) error
}

type NotificationRepository interface {
	Append(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}
