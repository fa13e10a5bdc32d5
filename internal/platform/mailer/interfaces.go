package mailer

import "context"

// Service is the optional email echo of in-app notifications. Implementations
// are best-effort: the lifecycle coordinator logs failures and moves on.
type Service interface {
	// SendVisitRequestEmail tells an owner that visitorName wants to visit.
	SendVisitRequestEmail(ctx context.Context, toEmail, toName, visitorName, date, timeOfDay, purpose string) error
	// SendDecisionEmail tells a visitor that ownerName has approved or denied
	// their request. decision is the past-tense verb ("approved", "denied").
	SendDecisionEmail(ctx context.Context, toEmail, toName, ownerName, decision, date, timeOfDay string) error
}
