package application

import (
	"context"
	"strings"

	"github.com/olaria/storefront/internal/contact/domain"
)

// ContactService accepts inquiry messages. Pure write sink: no dedup, no
// rate limiting, no delivery.
type ContactService struct{ repo domain.MessageRepository }

func NewContactService(repo domain.MessageRepository) *ContactService {
	return &ContactService{repo: repo}
}

type SubmitCommand struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit validates that every field is non-empty after trimming and
// persists the message. Nothing is written on a validation failure.
func (s *ContactService) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Message, error) {
	msg := &domain.Message{
		Name:    strings.TrimSpace(cmd.Name),
		Email:   strings.TrimSpace(cmd.Email),
		Subject: strings.TrimSpace(cmd.Subject),
		Body:    strings.TrimSpace(cmd.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Body == "" {
		return nil, domain.ErrValidation
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
