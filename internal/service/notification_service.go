package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/internal/utils"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, userID, title, message, relatedTo string) (*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, notificationID string) error
}

type notificationService struct {
	notificationRepo repo.NotificationRepository
}

func NewNotificationService(notificationRepo repo.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}

// Create assigns a fresh ID, stamps the record and appends it. The only
// validation is a non-empty recipient; title and message arrive composed by
// the lifecycle coordinator or the caller.
func (s *notificationService) Create(ctx context.Context, userID, title, message, relatedTo string) (*domain.Notification, error) {
	if utils.NormalizeString(userID) == "" {
		return nil, fmt.Errorf("notification recipient is required: %w", sentinel.ErrInvalidInput)
	}

	notification := &domain.Notification{
		ID:        "notif-" + uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
		RelatedTo: relatedTo,
	}

	if err := s.notificationRepo.Append(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, notificationID string) error {
	return s.notificationRepo.Delete(ctx, notificationID)
}
