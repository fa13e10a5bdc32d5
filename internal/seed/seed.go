package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/pkg/logger"
	"github.com/gatewise/visitflow/pkg/sentinel"
)

// Demo dataset for local runs: two owners, three visitors, a handful of
// requests in every lifecycle state and their matching notifications.

func Owners() []domain.User {
	return []domain.User{
		{
			ID:           "owner-1",
			Name:         "John Smith",
			Email:        "john@example.com",
			Phone:        "555-123-4567",
			Type:         domain.UserOwner,
			Address:      "123 Main Street, Apt 4B",
			ProfileImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=256",
		},
		{
			ID:           "owner-2",
			Name:         "Sarah Johnson",
			Email:        "sarah@example.com",
			Phone:        "555-987-6543",
			Type:         domain.UserOwner,
			Address:      "456 Oak Avenue, Suite 7C",
			ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256",
		},
	}
}

func Visitors() []domain.User {
	return []domain.User{
		{
			ID:           "visitor-1",
			Name:         "Michael Brown",
			Email:        "michael@example.com",
			Phone:        "555-222-3333",
			Type:         domain.UserVisitor,
			ProfileImage: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=256",
		},
		{
			ID:           "visitor-2",
			Name:         "Emily Davis",
			Email:        "emily@example.com",
			Phone:        "555-444-5555",
			Type:         domain.UserVisitor,
			ProfileImage: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=256",
		},
		{
			ID:           "visitor-3",
			Name:         "David Wilson",
			Email:        "david@example.com",
			Phone:        "555-666-7777",
			Type:         domain.UserVisitor,
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256",
		},
	}
}

func Requests() []domain.VisitRequest {
	return []domain.VisitRequest{
		{
			ID:        "request-1",
			VisitorID: "visitor-1",
			OwnerID:   "owner-1",
			Purpose:   "Maintenance check",
			Date:      "2023-11-15",
			Time:      "14:00",
			Status:    domain.RequestPending,
			CreatedAt: mustTime("2023-11-10T10:30:00Z"),
		},
		{
			ID:        "request-2",
			VisitorID: "visitor-2",
			OwnerID:   "owner-1",
			Purpose:   "Package delivery",
			Date:      "2023-11-16",
			Time:      "10:30",
			Status:    domain.RequestApproved,
			CreatedAt: mustTime("2023-11-11T09:15:00Z"),
		},
		{
			ID:        "request-3",
			VisitorID: "visitor-3",
			OwnerID:   "owner-2",
			Purpose:   "Social visit",
			Date:      "2023-11-17",
			Time:      "18:00",
			Status:    domain.RequestDenied,
			CreatedAt: mustTime("2023-11-12T14:45:00Z"),
		},
		{
			ID:        "request-4",
			VisitorID: "visitor-1",
			OwnerID:   "owner-2",
			Purpose:   "Internet installation",
			Date:      "2023-11-18",
			Time:      "11:00",
			Status:    domain.RequestPending,
			CreatedAt: mustTime("2023-11-13T16:20:00Z"),
		},
	}
}

func Notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        "notif-1",
			UserID:    "owner-1",
			Title:     "New Visit Request",
			Message:   "Michael Brown has requested to visit on Nov 15 at 2:00 PM",
			Read:      false,
			CreatedAt: mustTime("2023-11-10T10:30:00Z"),
			RelatedTo: "request-1",
		},
		{
			ID:        "notif-2",
			UserID:    "visitor-2",
			Title:     "Request Approved",
			Message:   "Your visit request for Nov 16 has been approved",
			Read:      true,
			CreatedAt: mustTime("2023-11-11T10:00:00Z"),
			RelatedTo: "request-2",
		},
		{
			ID:        "notif-3",
			UserID:    "visitor-3",
			Title:     "Request Denied",
			Message:   "Your visit request for Nov 17 has been denied",
			Read:      false,
			CreatedAt: mustTime("2023-11-12T15:00:00Z"),
			RelatedTo: "request-3",
		},
		{
			ID:        "notif-4",
			UserID:    "owner-2",
			Title:     "New Visit Request",
			Message:   "Michael Brown has requested to visit on Nov 18 at 11:00 AM",
			Read:      false,
			CreatedAt: mustTime("2023-11-13T16:20:00Z"),
			RelatedTo: "request-4",
		},
	}
}

// Apply loads the demo dataset. Users are upserted on every call (duplicates
// are skipped); requests and notifications load only when the visit
// collection is empty, so restored snapshots are never polluted.
func Apply(ctx context.Context, users repo.UserRepository, visits repo.VisitRepository, notifications repo.NotificationRepository) error {
	for _, user := range append(Owners(), Visitors()...) {
		if _, err := users.Create(ctx, &user); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", user.ID, err)
		}
	}

	existing, err := visits.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list requests: %w", err)
	}
	if len(existing) > 0 {
		logger.DebugContext(ctx, "Seed skipped, visit collection not empty", "requests", len(existing))
		return nil
	}

	for _, request := range Requests() {
		if err := visits.Append(ctx, &request); err != nil {
			return fmt.Errorf("seed request %s: %w", request.ID, err)
		}
	}
	for _, notification := range Notifications() {
		if err := notifications.Append(ctx, &notification); err != nil {
			return fmt.Errorf("seed notification %s: %w", notification.ID, err)
		}
	}

	logger.InfoContext(ctx, "Demo data seeded",
		"owners", len(Owners()), "visitors", len(Visitors()), "requests", len(Requests()))
	return nil
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
