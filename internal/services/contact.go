package services

import (
	"context"
	"errors"
	"fmt"

	"studio-api/internal/kafka"
	"studio-api/internal/logger"
	"studio-api/internal/metrics"
	"studio-api/internal/models"
	"studio-api/internal/redis"
	"studio-api/internal/storage"
)

var ErrMessageNotFound = errors.New("contact message not found")

// ContactService owns the public contact form pipeline and the admin inbox
// operations.
type ContactService struct {
	store    storage.Store
	email    *EmailService
	producer *kafka.Producer
	cache    *redis.Cache
	log      *logger.Logger
}

// NewContactService wires the contact pipeline. producer and cache may be
// nil, in which case events and caching are skipped.
func NewContactService(store storage.Store, email *EmailService, producer *kafka.Producer, cache *redis.Cache, log *logger.Logger) *ContactService {
	return &ContactService{
		store:    store,
		email:    email,
		producer: producer,
		cache:    cache,
		log:      log,
	}
}

// Submit validates a public contact form submission and persists it unread.
func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {
	if errs := validateContactRequest(req); errs.Any() {
		metrics.ValidationFailures.WithLabelValues("contact").Inc()
		return nil, errs
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}

	if err := s.store.SaveContactMessage(ctx, msg); err != nil {
		s.log.Error("CONTACT", fmt.Sprintf("failed to save contact message: %v", err))
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	metrics.ContactSubmissions.Inc()
	s.log.LogProcess("CONTACT", fmt.Sprintf("message %d from %s: %s", msg.ID, msg.Email, msg.Subject))

	// Operator notification is best effort, never blocks the submission.
	go func(m models.ContactMessage) {
		if err := s.email.SendContactAlert(&m); err != nil {
			metrics.EmailsSent.WithLabelValues("contact_alert", "error").Inc()
			s.log.Warn("EMAIL", fmt.Sprintf("contact %d alert failed: %v", m.ID, err))
		} else {
			metrics.EmailsSent.WithLabelValues("contact_alert", "ok").Inc()
		}
	}(*msg)

	if s.producer != nil {
		if err := s.producer.PublishContactReceived(msg); err != nil {
			s.log.Warn("KAFKA", fmt.Sprintf("contact %d received event failed: %v", msg.ID, err))
		}
	}
	s.invalidate(ctx, redis.KeyAdminMessages)

	return msg, nil
}

// List returns every contact message, newest first.
func (s *ContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	if s.cache != nil && s.cache.Get(ctx, redis.KeyAdminMessages, &messages) {
		return messages, nil
	}

	messages, err := s.store.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, redis.KeyAdminMessages, messages)
	}
	return messages, nil
}

func (s *ContactService) Get(ctx context.Context, id int64) (*models.ContactMessage, error) {
	msg, err := s.store.GetContactMessage(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return msg, nil
}

// SetReadStatus marks a message read or unread. Re-applying the current
// state succeeds without change.
func (s *ContactService) SetReadStatus(ctx context.Context, id int64, isRead bool) (*models.ContactMessage, error) {
	msg, err := s.store.UpdateContactMessageRead(ctx, id, isRead)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to update contact message: %w", err)
	}
	s.invalidate(ctx, redis.KeyAdminMessages)
	return msg, nil
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteContactMessage(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	s.invalidate(ctx, redis.KeyAdminMessages)
	return nil
}

// MarkAllRead marks every unread message read and returns how many changed.
func (s *ContactService) MarkAllRead(ctx context.Context) (int64, error) {
	affected, err := s.store.MarkAllContactMessagesRead(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	if affected > 0 {
		s.invalidate(ctx, redis.KeyAdminMessages)
	}
	return affected, nil
}

func (s *ContactService) invalidate(ctx context.Context, keys ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, keys...)
	}
}

func validateContactRequest(req *models.ContactRequest) models.ValidationErrors {
	errs := models.ValidationErrors{}

	if len(req.Name) < 2 {
		errs.Add("name", "Name must be at least 2 characters")
	}
	if !validEmail(req.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	if len(req.Subject) < 3 {
		errs.Add("subject", "Subject must be at least 3 characters")
	}
	if len(req.Message) < 10 {
		errs.Add("message", "Message must be at least 10 characters")
	}
	return errs
}
