package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sonai2004/My-Portfolio/internal/contact/domain"
	"github.com/Sonai2004/My-Portfolio/internal/contact/dto"
	"github.com/Sonai2004/My-Portfolio/internal/mailer"
	"github.com/google/uuid"
)

type ContactService struct {
	repo   domain.MessageRepository
	sender mailer.Sender
}

func NewContactService(repo domain.MessageRepository, sender mailer.Sender) *ContactService {
	return &ContactService{repo: repo, sender: sender}
}

// Submit persists the message and mails a notification to the site
// owner. The stored row is the source of truth: a delivery failure is
// logged but does not fail the submission.
func (s *ContactService) Submit(ctx context.Context, input dto.MessageInput) (*dto.MessageOutput, error) {
	m := &domain.Message{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if err := s.sender.SendContactNotification(ctx, mailer.ContactNote{
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Message: m.Body,
	}); err != nil {
		slog.Warn("failed to send contact notification", slog.String("message_id", m.ID), slog.Any("error", err))
	}

	out := toMessageOutput(m)
	return &out, nil
}

func (s *ContactService) List(ctx context.Context) ([]dto.MessageOutput, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageOutput, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageOutput(&messages[i]))
	}
	return out, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toMessageOutput(m *domain.Message) dto.MessageOutput {
	return dto.MessageOutput{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
