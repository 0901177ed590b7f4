package storage

import (
	"context"
	"errors"

	"studio-api/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary. Implementations own the mapping between
// the application's camelCase fields and the backend's snake_case columns;
// nothing above this interface speaks column names.
type Store interface {
	// Booking operations. SaveBooking populates ID and CreatedAt.
	SaveBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	ListBookings(ctx context.Context, opts models.BookingListOptions) ([]*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error)

	// Contact message operations.
	SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error
	GetContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateContactMessageRead(ctx context.Context, id int64, isRead bool) (*models.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id int64) error
	MarkAllContactMessagesRead(ctx context.Context) (int64, error)

	// Offer operations.
	ListOffers(ctx context.Context, activeOnly bool) ([]*models.Offer, error)
	SaveOffer(ctx context.Context, offer *models.Offer) error
	UpdateOffer(ctx context.Context, offer *models.Offer) error
	DeleteOffer(ctx context.Context, id int64) error

	// Portfolio operations.
	ListPortfolioItems(ctx context.Context, opts models.PortfolioListOptions) ([]*models.PortfolioItem, error)
	SavePortfolioItem(ctx context.Context, item *models.PortfolioItem) error
	UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error
	DeletePortfolioItem(ctx context.Context, id int64) error

	// Testimonial operations.
	ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error)
	SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error

	// User operations.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}
