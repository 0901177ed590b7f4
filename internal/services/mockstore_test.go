package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/models"
)

// MockStore stubs the storage layer for failure-path tests the in-memory
// store cannot produce.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockStore) ListBookings(ctx context.Context, opts models.BookingListOptions) ([]*models.Booking, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *MockStore) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockStore) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockStore) GetContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockStore) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactMessage), args.Error(1)
}

func (m *MockStore) UpdateContactMessageRead(ctx context.Context, id int64, isRead bool) (*models.ContactMessage, error) {
	args := m.Called(ctx, id, isRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockStore) DeleteContactMessage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) MarkAllContactMessagesRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListOffers(ctx context.Context, activeOnly bool) ([]*models.Offer, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Offer), args.Error(1)
}

func (m *MockStore) SaveOffer(ctx context.Context, offer *models.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockStore) UpdateOffer(ctx context.Context, offer *models.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockStore) DeleteOffer(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListPortfolioItems(ctx context.Context, opts models.PortfolioListOptions) ([]*models.PortfolioItem, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PortfolioItem), args.Error(1)
}

func (m *MockStore) SavePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStore) UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStore) DeletePortfolioItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *MockStore) SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	return m.Called(ctx, testimonial).Error(0)
}

func (m *MockStore) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	return m.Called(ctx, testimonial).Error(0)
}

func (m *MockStore) DeleteTestimonial(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) SaveUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func newMockedBookingService(store *MockStore) *BookingService {
	log := logger.NewLogger()
	email := NewEmailService(config.EmailConfig{Enabled: false}, config.StudioConfig{}, log)
	return NewBookingService(store, email, nil, nil, log)
}

func TestSubmitBookingPersistenceFailure(t *testing.T) {
	store := new(MockStore)
	store.On("SaveBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(errors.New("connection refused"))

	svc := newMockedBookingService(store)

	// A storage failure surfaces immediately, there is no retry.
	_, err := svc.Submit(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save booking")
	store.AssertExpectations(t)
}

func TestSetStatusPersistenceFailure(t *testing.T) {
	store := new(MockStore)
	store.On("GetBooking", mock.Anything, int64(1)).
		Return(&models.Booking{ID: 1, Status: models.StatusPending}, nil)
	store.On("UpdateBookingStatus", mock.Anything, int64(1), models.StatusConfirmed).
		Return(nil, errors.New("connection refused"))

	svc := newMockedBookingService(store)

	_, err := svc.SetStatus(context.Background(), 1, models.StatusConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update booking status")
	store.AssertExpectations(t)
}

func TestSubmitBookingDoesNotTouchStoreWhenInvalid(t *testing.T) {
	store := new(MockStore)
	svc := newMockedBookingService(store)

	req := validBookingRequest()
	req.AgreeToTerms = false

	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	store.AssertNotCalled(t, "SaveBooking", mock.Anything, mock.Anything)
}
