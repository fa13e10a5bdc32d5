package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendVisitRequestEmail(ctx context.Context, toEmail, toName, visitorName, date, timeOfDay, purpose string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "New visit request"
	html := fmt.Sprintf(`
		<h2>New Visit Request</h2>
		<p>Hi %s,</p>
		<p><strong>%s</strong> has requested to visit on <strong>%s</strong> at <strong>%s</strong>.</p>
		<p>Purpose: %s</p>
		<p>Open the app to approve or deny this request.</p>
	`, toName, visitorName, date, timeOfDay, purpose)

	text := fmt.Sprintf("%s has requested to visit on %s at %s.\n\nPurpose: %s\n\nOpen the app to approve or deny this request.",
		visitorName, date, timeOfDay, purpose)

	return m.sendEmail(ctx, toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendDecisionEmail(ctx context.Context, toEmail, toName, ownerName, decision, date, timeOfDay string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("Your visit request was %s", decision)
	html := fmt.Sprintf(`
		<h2>Visit Request %s</h2>
		<p>Hi %s,</p>
		<p>%s has <strong>%s</strong> your visit request for <strong>%s</strong> at <strong>%s</strong>.</p>
	`, strings.ToUpper(decision[:1])+decision[1:], toName, ownerName, decision, date, timeOfDay)

	text := fmt.Sprintf("%s has %s your visit request for %s at %s.", ownerName, decision, date, timeOfDay)

	return m.sendEmail(ctx, toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(ctx context.Context, toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
