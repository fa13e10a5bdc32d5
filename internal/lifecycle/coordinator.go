package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatewise/visitflow/internal/domain"
	"github.com/gatewise/visitflow/internal/platform/mailer"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/internal/service"
	"github.com/gatewise/visitflow/pkg/logger"
)

// Fallback display names when the referenced user cannot be resolved, e.g.
// requests restored from a snapshot whose users are gone from the directory.
const (
	fallbackVisitorName = "A visitor"
	fallbackOwnerName   = "The owner"
)

// Coordinator is the only code path allowed to turn a visit-request mutation
// into a notification write. It runs after the request registry has committed
// its own mutation, so readers always see the request change before the
// derived notification. Email delivery is a best-effort echo; its failures
// never propagate.
type Coordinator struct {
	users         repo.UserRepository
	notifications service.NotificationService
	mail          mailer.Service
}

func NewCoordinator(users repo.UserRepository, notifications service.NotificationService, mail mailer.Service) *Coordinator {
	return &Coordinator{
		users:         users,
		notifications: notifications,
		mail:          mail,
	}
}

// OnRequestCreated notifies the owner about a newly submitted request.
func (c *Coordinator) OnRequestCreated(ctx context.Context, request *domain.VisitRequest) error {
	visitorName := fallbackVisitorName
	if visitor, err := c.users.FindByID(ctx, request.VisitorID); err == nil {
		visitorName = visitor.Name
	}

	title := "New Visit Request"
	message := fmt.Sprintf("%s has requested to visit on %s at %s", visitorName, request.Date, request.Time)

	if _, err := c.notifications.Create(ctx, request.OwnerID, title, message, request.ID); err != nil {
		return fmt.Errorf("owner notification for request %s: %w", request.ID, err)
	}

	if c.mail != nil {
		owner, err := c.users.FindByID(ctx, request.OwnerID)
		if err == nil {
			if err := c.mail.SendVisitRequestEmail(ctx, owner.Email, owner.Name, visitorName, request.Date, request.Time, request.Purpose); err != nil {
				logger.WarnContext(ctx, "Visit request email not delivered",
					"error", err, "visit_request_id", request.ID, "owner_id", request.OwnerID)
			}
		}
	}
	return nil
}

// OnRequestStatusChanged notifies the visitor about the owner's decision.
// It expects the post-mutation record, so request.Status is already terminal.
func (c *Coordinator) OnRequestStatusChanged(ctx context.Context, request *domain.VisitRequest) error {
	ownerName := fallbackOwnerName
	if owner, err := c.users.FindByID(ctx, request.OwnerID); err == nil {
		ownerName = owner.Name
	}

	verb := request.Status.Verb()
	title := "Request " + capitalize(verb)
	message := fmt.Sprintf("%s has %s your visit request for %s at %s", ownerName, verb, request.Date, request.Time)

	if _, err := c.notifications.Create(ctx, request.VisitorID, title, message, request.ID); err != nil {
		return fmt.Errorf("visitor notification for request %s: %w", request.ID, err)
	}

	if c.mail != nil {
		visitor, err := c.users.FindByID(ctx, request.VisitorID)
		if err == nil {
			if err := c.mail.SendDecisionEmail(ctx, visitor.Email, visitor.Name, ownerName, verb, request.Date, request.Time); err != nil {
				logger.WarnContext(ctx, "Decision email not delivered",
					"error", err, "visit_request_id", request.ID, "visitor_id", request.VisitorID)
			}
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
