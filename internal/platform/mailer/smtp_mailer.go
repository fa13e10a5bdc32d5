package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host   string
	Port   int
	From   string
	User   string
	Pass   string
	UseTLS bool
}

func NewSMTPMailer(host string, port int, from, user, pass string, useTLS bool) *SMTPMailer {
	return &SMTPMailer{
		Host:   strings.TrimSpace(host),
		Port:   port,
		From:   strings.TrimSpace(from),
		User:   strings.TrimSpace(user),
		Pass:   strings.TrimSpace(pass),
		UseTLS: useTLS,
	}
}

func (s *SMTPMailer) SendVisitRequestEmail(_ context.Context, toEmail, toName, visitorName, date, timeOfDay, purpose string) error {
	subject := "New visit request"
	text := fmt.Sprintf("%s has requested to visit on %s at %s.\n\nPurpose: %s\n\nOpen the app to approve or deny this request.",
		visitorName, date, timeOfDay, purpose)
	html := fmt.Sprintf(`
		<h2>New Visit Request</h2>
		<p>Hi %s,</p>
		<p><strong>%s</strong> has requested to visit on <strong>%s</strong> at <strong>%s</strong>.</p>
		<p>Purpose: %s</p>
		<p>Open the app to approve or deny this request.</p>
	`, toName, visitorName, date, timeOfDay, purpose)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) SendDecisionEmail(_ context.Context, toEmail, toName, ownerName, decision, date, timeOfDay string) error {
	subject := fmt.Sprintf("Your visit request was %s", decision)
	text := fmt.Sprintf("%s has %s your visit request for %s at %s.", ownerName, decision, date, timeOfDay)
	html := fmt.Sprintf(`
		<h2>Visit Request Update</h2>
		<p>Hi %s,</p>
		<p>%s has <strong>%s</strong> your visit request for <strong>%s</strong> at <strong>%s</strong>.</p>
	`, toName, ownerName, decision, date, timeOfDay)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) sendEmail(toEmail, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "mixed-boundary"

	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", html)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Mailpit or development SMTP (no auth, no TLS)
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, buf.Bytes())
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// Try plain SMTP first (with STARTTLS if supported)
	if err := smtp.SendMail(addr, auth, s.From, []string{toEmail}, buf.Bytes()); err == nil {
		return nil
	}

	// Fallback to implicit TLS (port 465)
	if !s.UseTLS {
		return fmt.Errorf("smtp send failed and TLS fallback disabled")
	}

	tlsCfg := &tls.Config{ServerName: s.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if s.User != "" {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
