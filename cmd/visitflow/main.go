package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/gatewise/visitflow/internal/app"
	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/pkg/config"
	"github.com/gatewise/visitflow/pkg/logger"
)

// Demo walkthrough of the visitor-management core: a visitor signs in and
// submits a request, the owner approves it, and both sides read their
// notifications. There is no API layer; UI collaborators call the same
// services this binary does.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	visitor, err := a.AuthService.DemoLogin(ctx, domain.UserVisitor, "")
	if err != nil {
		logger.Error("Visitor demo login failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Signed in as visitor", "user_id", visitor.ID, "name", visitor.Name)

	owners, err := a.Users.ListByType(ctx, domain.UserOwner)
	if err != nil || len(owners) == 0 {
		logger.Error("No owners in directory", "error", err)
		os.Exit(1)
	}
	owner := owners[0]

	request, err := a.VisitService.CreateRequest(ctx, visitor.ID, owner.ID, "Delivery", "2024-01-01", "10:00")
	if err != nil {
		logger.Error("Failed to create visit request", "error", err)
		os.Exit(1)
	}
	logger.Info("Visit request submitted",
		"visit_request_id", request.ID, "status", request.Status, "owner", owner.Name)

	ownerInbox, err := a.NotificationService.ListForUser(ctx, owner.ID)
	if err != nil {
		logger.Error("Failed to fetch owner notifications", "error", err)
		os.Exit(1)
	}
	for _, n := range ownerInbox {
		logger.Info("Owner notification", "title", n.Title, "message", n.Message, "read", n.Read)
	}

	if _, err := a.AuthService.DemoLogin(ctx, domain.UserOwner, owner.ID); err != nil {
		logger.Error("Owner demo login failed", "error", err)
		os.Exit(1)
	}

	updated, err := a.VisitService.UpdateRequestStatus(ctx, request.ID, domain.RequestApproved)
	if err != nil {
		logger.Error("Failed to approve request", "error", err)
		os.Exit(1)
	}
	logger.Info("Visit request approved", "visit_request_id", updated.ID, "status", updated.Status)

	visitorInbox, err := a.NotificationService.ListForUser(ctx, visitor.ID)
	if err != nil {
		logger.Error("Failed to fetch visitor notifications", "error", err)
		os.Exit(1)
	}
	for _, n := range visitorInbox {
		logger.Info("Visitor notification", "title", n.Title, "message", n.Message, "read", n.Read)
	}

	unread, err := a.NotificationService.UnreadCount(ctx, visitor.ID)
	if err == nil {
		logger.Info("Visitor unread count", "count", unread)
	}
}
