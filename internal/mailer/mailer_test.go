package mailer

import (
	"context"
	"testing"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/stretchr/testify/assert"
)

func TestResetLink(t *testing.T) {
	assert.Equal(t, "https://example.com/reset-password?token=abc",
		resetLink("https://example.com", "abc"))
	assert.Equal(t, "https://example.com/reset-password?token=abc",
		resetLink("https://example.com/", "abc"))
	assert.Equal(t, "abc", resetLink("", "abc"))
}

func TestNewSender(t *testing.T) {
	smtp := NewSender(&config.Config{MailSender: "smtp"})
	assert.IsType(t, &SMTPSender{}, smtp)

	fallback := NewSender(&config.Config{MailSender: "log"})
	assert.IsType(t, &LogSender{}, fallback)
}

func TestLogSender(t *testing.T) {
	s := &LogSender{baseURL: "https://example.com"}
	assert.NoError(t, s.SendPasswordReset(context.Background(), "admin@example.com", "raw-token"))
	assert.NoError(t, s.SendContactNotification(context.Background(), ContactNote{Email: "visitor@example.com"}))
}
