package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"studio-api/internal/kafka"
	"studio-api/internal/logger"
	"studio-api/internal/metrics"
	"studio-api/internal/models"
	"studio-api/internal/redis"
	"studio-api/internal/storage"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// BookingService owns the public intake pipeline and the admin lifecycle
// operations for bookings.
type BookingService struct {
	store    storage.Store
	email    *EmailService
	producer *kafka.Producer
	cache    *redis.Cache
	log      *logger.Logger
}

// NewBookingService wires the booking pipeline. producer and cache may be
// nil, in which case events and caching are skipped.
func NewBookingService(store storage.Store, email *EmailService, producer *kafka.Producer, cache *redis.Cache, log *logger.Logger) *BookingService {
	return &BookingService{
		store:    store,
		email:    email,
		producer: producer,
		cache:    cache,
		log:      log,
	}
}

// Submit validates a public booking form submission and persists it with
// status pending. Validation collects every field error before rejecting.
// The terms consent is checked here and then discarded, it is never stored.
func (s *BookingService) Submit(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	if errs := validateBookingRequest(req); errs.Any() {
		metrics.ValidationFailures.WithLabelValues("booking").Inc()
		return nil, errs
	}

	booking := &models.Booking{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Message:     req.Message,
		Budget:      req.Budget,
		Status:      models.StatusPending,
	}

	if err := s.store.SaveBooking(ctx, booking); err != nil {
		s.log.Error("BOOKING", fmt.Sprintf("failed to save booking: %v", err))
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	metrics.BookingsSubmitted.WithLabelValues(booking.ServiceType).Inc()
	s.log.LogBooking("CREATE", booking.ID, fmt.Sprintf("%s %s, %s, KSh %d",
		booking.FirstName, booking.LastName, booking.ServiceType, booking.Budget))

	// Notifications are best effort. A dead SMTP server or broker must
	// never turn a stored booking into a 500.
	s.notifyBookingCreated(booking)
	s.invalidate(ctx, redis.KeyAdminBookings)

	return booking, nil
}

func (s *BookingService) notifyBookingCreated(booking *models.Booking) {
	go func(b models.Booking) {
		if err := s.email.SendBookingConfirmation(&b); err != nil {
			metrics.EmailsSent.WithLabelValues("booking_confirmation", "error").Inc()
			s.log.Warn("EMAIL", fmt.Sprintf("booking %d confirmation failed: %v", b.ID, err))
		} else {
			metrics.EmailsSent.WithLabelValues("booking_confirmation", "ok").Inc()
		}
		if err := s.email.SendBookingAlert(&b); err != nil {
			metrics.EmailsSent.WithLabelValues("booking_alert", "error").Inc()
			s.log.Warn("EMAIL", fmt.Sprintf("booking %d admin alert failed: %v", b.ID, err))
		} else {
			metrics.EmailsSent.WithLabelValues("booking_alert", "ok").Inc()
		}
	}(*booking)

	if s.producer != nil {
		if err := s.producer.PublishBookingCreated(booking); err != nil {
			s.log.Warn("KAFKA", fmt.Sprintf("booking %d created event failed: %v", booking.ID, err))
		}
	}
}

// List returns bookings for the admin dashboard. Status filter and sort are
// pushed to the store; the free-text search is applied locally over first
// name, last name, email, phone and service type.
func (s *BookingService) List(ctx context.Context, opts models.BookingListOptions) ([]*models.Booking, error) {
	var bookings []*models.Booking

	cacheable := opts.Status == "" &&
		(opts.SortField == "" || opts.SortField == "created_at") &&
		!opts.SortAscending

	if cacheable && s.cache != nil && s.cache.Get(ctx, redis.KeyAdminBookings, &bookings) {
		return filterBookings(bookings, opts.Search), nil
	}

	bookings, err := s.store.ListBookings(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, redis.KeyAdminBookings, bookings)
	}
	return filterBookings(bookings, opts.Search), nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// SetStatus moves a booking to a new lifecycle status. Every valid status
// is reachable from every other, and setting the current status again is a
// no-op that still succeeds.
func (s *BookingService) SetStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.store.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	oldStatus := current.Status

	booking, err := s.store.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	metrics.BookingStatusUpdates.WithLabelValues(string(status)).Inc()
	s.log.LogBooking("STATUS", id, fmt.Sprintf("%s -> %s", oldStatus, status))

	if s.producer != nil && oldStatus != status {
		if err := s.producer.PublishBookingStatusChanged(id, oldStatus, status); err != nil {
			s.log.Warn("KAFKA", fmt.Sprintf("booking %d status event failed: %v", id, err))
		}
	}
	s.invalidate(ctx, redis.KeyAdminBookings)

	return booking, nil
}

func (s *BookingService) invalidate(ctx context.Context, keys ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, keys...)
	}
}

func validateBookingRequest(req *models.BookingRequest) models.ValidationErrors {
	errs := models.ValidationErrors{}

	if len(req.FirstName) < 2 {
		errs.Add("firstName", "First name must be at least 2 characters")
	}
	if len(req.LastName) < 2 {
		errs.Add("lastName", "Last name must be at least 2 characters")
	}
	if !validEmail(req.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	if len(req.Phone) < 10 {
		errs.Add("phone", "Please enter a valid phone number")
	}
	if req.ServiceType == "" {
		errs.Add("serviceType", "Please select a service type")
	}
	if req.Budget < models.MinBudget {
		errs.Add("budget", fmt.Sprintf("Budget must be at least %d", models.MinBudget))
	}
	if req.Budget > models.MaxBudget {
		errs.Add("budget", fmt.Sprintf("Budget must be at most %d", models.MaxBudget))
	}
	if !req.AgreeToTerms {
		errs.Add("agreeToTerms", "You must agree to the terms and conditions")
	}
	return errs
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func filterBookings(bookings []*models.Booking, search string) []*models.Booking {
	if search == "" {
		return bookings
	}
	needle := strings.ToLower(search)
	filtered := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		haystack := strings.ToLower(strings.Join([]string{
			b.FirstName, b.LastName, b.Email, b.Phone, b.ServiceType,
		}, " "))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
