package mailer

import (
	"context"
	"fmt"

	"github.com/gatewise/visitflow/pkg/logger"
)

// DevMailer prints emails instead of sending them. Default in dev mode.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendVisitRequestEmail(ctx context.Context, toEmail, toName, visitorName, date, timeOfDay, purpose string) error {
	logger.InfoContext(ctx, "📧 [DEV MAIL] Visit Request Email",
		"to", toEmail,
		"name", toName,
		"visitor", visitorName,
		"date", date,
		"time", timeOfDay,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 VISIT REQUEST EMAIL (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: New visit request\n"+
		"\n"+
		"%s has requested to visit on %s at %s.\n"+
		"Purpose: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, toName, visitorName, date, timeOfDay, purpose)

	return nil
}

func (d *DevMailer) SendDecisionEmail(ctx context.Context, toEmail, toName, ownerName, decision, date, timeOfDay string) error {
	logger.InfoContext(ctx, "📧 [DEV MAIL] Decision Email",
		"to", toEmail,
		"name", toName,
		"owner", ownerName,
		"decision", decision,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 DECISION EMAIL (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: Your visit request was %s\n"+
		"\n"+
		"%s has %s your visit request for %s at %s.\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, toName, decision, ownerName, decision, date, timeOfDay)

	return nil
}
