package domain

//go:generate mockgen -destination=../../mocks/mock_contact_repository.go -package=mocks github.com/Sonai2004/My-Portfolio/internal/contact/domain MessageRepository

import (
	"context"
	"time"
)

type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context) ([]Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
