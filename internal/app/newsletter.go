package app

import (
	"errors"
	"fmt"

	"github.com/bciai-club/clubdesk/internal/models"
	"github.com/bciai-club/clubdesk/internal/store"
)

// SubscribeResult tells the caller which transition happened: a fresh
// subscription or a reactivated one.
type SubscribeResult struct {
	Created     bool
	Reactivated bool
}

// Subscribe drives the per-email state machine: absent → create,
// inactive → reactivate with a fresh timestamp, active → ErrAlreadySubscribed.
// A lost race on the insert is reported as ErrAlreadySubscribed too, the
// unique constraint on email decides the winner.
func (s *Service) Subscribe(email string) (SubscribeResult, error) {
	if email == "" {
		return SubscribeResult{}, &models.MissingFieldError{Field: "email"}
	}

	existing, err := s.Store.GetSubscriptionByEmail(email)
	if err != nil {
		return SubscribeResult{}, err
	}

	if existing != nil {
		if existing.IsActive {
			return SubscribeResult{}, ErrAlreadySubscribed
		}
		if err := s.Store.ReactivateSubscription(email, s.timestamp()); err != nil {
			return SubscribeResult{}, fmt.Errorf("failed to reactivate subscription: %w", err)
		}
		return SubscribeResult{Reactivated: true}, nil
	}

	sub := &models.NewsletterSubscription{
		Email:        email,
		IsActive:     true,
		SubscribedAt: s.timestamp(),
	}
	if err := s.Store.CreateSubscription(sub); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return SubscribeResult{}, ErrAlreadySubscribed
		}
		return SubscribeResult{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	return SubscribeResult{Created: true}, nil
}
