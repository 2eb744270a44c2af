package app

import (
	"fmt"

	"github.com/bciai-club/clubdesk/internal/models"
)

// SubmitContact validates and stores a contact form message, unread.
func (s *Service) SubmitContact(in *models.ContactInput) (*models.ContactMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: s.timestamp(),
	}

	if err := s.Store.CreateContactMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to persist contact message: %w", err)
	}

	return msg, nil
}
