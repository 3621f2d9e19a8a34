// Package mailer sends outbound notification emails over SMTP, with a
// log-only fallback for development.
package mailer

//go:generate mockgen -destination=../mocks/mock_sender.go -package=mocks github.com/Sonai2004/My-Portfolio/internal/mailer Sender

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sonai2004/My-Portfolio/config"
	mail "github.com/wneessen/go-mail"
)

type ContactNote struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Sender interface {
	// SendPasswordReset emails the raw reset token embedded in a reset
	// link. An error signals delivery failure and triggers the caller's
	// compensating cleanup.
	SendPasswordReset(ctx context.Context, toEmail, rawToken string) error
	SendContactNotification(ctx context.Context, note ContactNote) error
}

func NewSender(cfg *config.Config) Sender {
	switch cfg.MailSender {
	case "smtp":
		return &SMTPSender{
			host:       cfg.SMTPHost,
			port:       cfg.SMTPPort,
			user:       cfg.SMTPUser,
			password:   cfg.SMTPPassword,
			from:       cfg.MailFrom,
			ownerEmail: cfg.OwnerEmail,
			baseURL:    cfg.ResetBaseURL,
		}
	default:
		return &LogSender{baseURL: cfg.ResetBaseURL}
	}
}

// LogSender only logs what would have been sent. Never use it in
// production: the raw reset token ends up in the logs.
type LogSender struct {
	baseURL string
}

func (s *LogSender) SendPasswordReset(ctx context.Context, toEmail, rawToken string) error {
	_ = ctx
	slog.Info("password reset email",
		slog.String("to", toEmail),
		slog.String("link", resetLink(s.baseURL, rawToken)))
	return nil
}

func (s *LogSender) SendContactNotification(ctx context.Context, note ContactNote) error {
	_ = ctx
	slog.Info("contact notification",
		slog.String("from", note.Email),
		slog.String("subject", note.Subject))
	return nil
}

type SMTPSender struct {
	host       string
	port       int
	user       string
	password   string
	from       string
	ownerEmail string
	baseURL    string
}

func (s *SMTPSender) SendPasswordReset(ctx context.Context, toEmail, rawToken string) error {
	body := fmt.Sprintf(
		"You requested a password reset.\r\n\r\nUse this link to choose a new password:\r\n%s\r\n\r\nThe link expires in one hour. If you did not request this, ignore this email.\r\n",
		resetLink(s.baseURL, rawToken))

	return s.send(ctx, toEmail, "Password Reset", body)
}

func (s *SMTPSender) SendContactNotification(ctx context.Context, note ContactNote) error {
	if s.ownerEmail == "" {
		return nil
	}

	body := fmt.Sprintf("New contact message\r\n\r\nFrom: %s <%s>\r\nSubject: %s\r\n\r\n%s\r\n",
		note.Name, note.Email, note.Subject, note.Message)

	return s.send(ctx, s.ownerEmail, fmt.Sprintf("Portfolio contact: %s", note.Subject), body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{mail.WithPort(s.port)}
	if s.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.user),
			mail.WithPassword(s.password))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func resetLink(baseURL, rawToken string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return rawToken
	}
	return fmt.Sprintf("%s/reset-password?token=%s", base, rawToken)
}
